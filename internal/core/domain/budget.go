package domain

// BudgetOptimization tells how spend is controlled at one level of the
// campaign hierarchy. AD_SET_BUDGET_OPTIMIZATION is only meaningful on the
// campaign level and hands spend control to the ad sets.
type BudgetOptimization string

const (
	BudgetDaily         BudgetOptimization = "DAILY_BUDGET"
	BudgetLifetime      BudgetOptimization = "LIFETIME_BUDGET"
	BudgetAdSetOptimize BudgetOptimization = "AD_SET_BUDGET_OPTIMIZATION"
)

// ValidCampaign reports whether b may be set on the campaign level.
func (b BudgetOptimization) ValidCampaign() bool {
	return b == BudgetDaily || b == BudgetLifetime || b == BudgetAdSetOptimize
}

// ValidAdSet reports whether b may be set on the ad set level.
func (b BudgetOptimization) ValidAdSet() bool {
	return b == BudgetDaily || b == BudgetLifetime
}

type BidStrategy string

const (
	BidLowestCost        BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidCostCap           BidStrategy = "COST_CAP"
	BidLowestCostWithCap BidStrategy = "LOWEST_COST_WITH_BID_CAP"
)

func (b BidStrategy) Valid() bool {
	return b == BidLowestCost || b == BidCostCap || b == BidLowestCostWithCap
}

// Capped reports whether the strategy needs an explicit bid amount.
func (b BidStrategy) Capped() bool {
	return b == BidCostCap || b == BidLowestCostWithCap
}

type BuyingType string

const (
	BuyingAuction  BuyingType = "AUCTION"
	BuyingReserved BuyingType = "RESERVED"
)

func (b BuyingType) Valid() bool {
	return b == BuyingAuction || b == BuyingReserved
}
