package domain

// Platform is a Meta surface an ad set can deliver on.
type Platform string

const (
	PlatformFacebook        Platform = "facebook"
	PlatformInstagram       Platform = "instagram"
	PlatformAudienceNetwork Platform = "audience_network"
	PlatformMessenger       Platform = "messenger"
)

// Placement is a single delivery slot. Every placement belongs to exactly
// one platform.
type Placement string

const (
	PlacementFeeds                    Placement = "feeds"
	PlacementProfileFeed              Placement = "profile_feed"
	PlacementMarketplace              Placement = "marketplace"
	PlacementVideoFeeds               Placement = "video_feeds"
	PlacementRightColumn              Placement = "right_column"
	PlacementStories                  Placement = "stories"
	PlacementReels                    Placement = "reels"
	PlacementInStream                 Placement = "in_stream"
	PlacementSearch                   Placement = "search"
	PlacementFacebookReels            Placement = "facebook_reels"
	PlacementInstagramFeeds           Placement = "instagram_feeds"
	PlacementInstagramProfileFeed     Placement = "instagram_profile_feed"
	PlacementExplore                  Placement = "explore"
	PlacementExploreHome              Placement = "explore_home"
	PlacementInstagramStories         Placement = "instagram_stories"
	PlacementInstagramReels           Placement = "instagram_reels"
	PlacementInstagramSearch          Placement = "instagram_search"
	PlacementNativeBannerInterstitial Placement = "native_banner_interstitial"
	PlacementRewardedVideos           Placement = "rewarded_videos"
	PlacementMessengerInbox           Placement = "messenger_inbox"
	PlacementMessengerStories         Placement = "messenger_stories"
	PlacementMessengerSponsored       Placement = "messenger_sponsored"
)

// Platforms lists every platform in display order.
var Platforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformAudienceNetwork,
	PlatformMessenger,
}

// platformPlacements is the static ownership table of placement slots.
var platformPlacements = map[Platform][]Placement{
	PlatformFacebook: {
		PlacementFeeds, PlacementProfileFeed, PlacementMarketplace, PlacementVideoFeeds,
		PlacementRightColumn, PlacementStories, PlacementReels, PlacementInStream,
		PlacementSearch, PlacementFacebookReels,
	},
	PlatformInstagram: {
		PlacementInstagramFeeds, PlacementInstagramProfileFeed, PlacementExplore,
		PlacementExploreHome, PlacementInstagramStories, PlacementInstagramReels,
		PlacementInstagramSearch,
	},
	PlatformAudienceNetwork: {
		PlacementNativeBannerInterstitial, PlacementRewardedVideos,
	},
	PlatformMessenger: {
		PlacementMessengerInbox, PlacementMessengerStories, PlacementMessengerSponsored,
	},
}

var placementOwner = func() map[Placement]Platform {
	owners := make(map[Placement]Platform)
	for platform, slots := range platformPlacements {
		for _, slot := range slots {
			owners[slot] = platform
		}
	}
	return owners
}()

// PlacementsOf returns the slots owned by p.
func PlacementsOf(p Platform) []Placement {
	return append([]Placement(nil), platformPlacements[p]...)
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	_, ok := platformPlacements[p]
	return ok
}

// Valid reports whether p is a known placement slot.
func (p Placement) Valid() bool {
	_, ok := placementOwner[p]
	return ok
}

// Platform returns the platform owning the slot.
func (p Placement) Platform() Platform {
	return placementOwner[p]
}

// PlacementType selects between automatic and manual placements.
type PlacementType string

const (
	PlacementAdvantagePlus PlacementType = "advantage_plus"
	PlacementManual        PlacementType = "manual"
)

func (t PlacementType) Valid() bool {
	return t == PlacementAdvantagePlus || t == PlacementManual
}

// TargetingType selects between automatic and manual audience targeting.
type TargetingType string

const (
	TargetingAdvantage TargetingType = "Advantage"
	TargetingManual    TargetingType = "Manual"
)

func (t TargetingType) Valid() bool {
	return t == TargetingAdvantage || t == TargetingManual
}

type Gender string

const (
	GenderAll    Gender = "All"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderAll, GenderMale, GenderFemale:
		return true
	}
	return false
}

// Attribution is the click/view lookback window used to credit conversions.
type Attribution string

const (
	Attribution1dClick Attribution = "1d_click"
	Attribution7dClick Attribution = "7d_click"
	Attribution1dView  Attribution = "1d_view"
	Attribution7dView  Attribution = "7d_view"
)

func (a Attribution) Valid() bool {
	switch a {
	case Attribution1dClick, Attribution7dClick, Attribution1dView, Attribution7dView:
		return true
	}
	return false
}

const (
	MinAge = 18
	MaxAge = 65
)

// AgeRange is an ordered [lo, hi] pair.
type AgeRange [2]int

// Valid reports whether MinAge <= lo <= hi <= MaxAge.
func (r AgeRange) Valid() bool {
	return MinAge <= r[0] && r[0] <= r[1] && r[1] <= MaxAge
}
