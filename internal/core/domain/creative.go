package domain

import (
	"errors"
	"fmt"
)

// DefaultMaxUploadBytes caps the total size of the creatives attached to one
// draft (10 GiB).
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024 * 1024

var ErrUploadTooLarge = errors.New("total creative upload size exceeds limit")

type CallToAction string

const (
	CallToActionShopNow   CallToAction = "SHOP_NOW"
	CallToActionLearnMore CallToAction = "LEARN_MORE"
	CallToActionSignUp    CallToAction = "SIGN_UP"
)

func (c CallToAction) Valid() bool {
	return c == CallToActionShopNow || c == CallToActionLearnMore || c == CallToActionSignUp
}

type AdFormat string

const (
	AdFormatSingleMedia AdFormat = "Single image or video"
	AdFormatCarousel    AdFormat = "Carousel"
)

func (f AdFormat) Valid() bool {
	return f == AdFormatSingleMedia || f == AdFormatCarousel
}

// Creative is an uploaded media file waiting to be attached to the campaign.
// Path points at the spooled copy of the upload and never leaves the service.
type Creative struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
	Path     string `json:"-"`
}

// TotalSize sums the sizes of creatives.
func TotalSize(creatives []Creative) int64 {
	var total int64
	for _, c := range creatives {
		total += c.FileSize
	}
	return total
}

// CheckUploadSize rejects an upload of incoming bytes when, together with
// the already attached creatives, it would exceed limit. A non-positive
// limit falls back to DefaultMaxUploadBytes.
func CheckUploadSize(attached []Creative, incoming, limit int64) error {
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	if incoming < 0 {
		return fmt.Errorf("%w: negative size", ErrUploadTooLarge)
	}
	if total := TotalSize(attached) + incoming; total > limit {
		return fmt.Errorf("%w: %d > %d bytes", ErrUploadTooLarge, total, limit)
	}
	return nil
}
