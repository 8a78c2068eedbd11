package config

import (
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateExampleConfiguration returns a starter plan with a few illustrative scenarios
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.Profile{
			Name:                    "Example Saver",
			CurrentAge:              30,
			RetirementAge:           65,
			CurrentSavings:          decimal.NewFromInt(50000),
			MonthlyContributions:    decimal.NewFromInt(1000),
			DesiredRetirementIncome: decimal.NewFromInt(4000),
		},
		GlobalAssumptions: domain.GlobalAssumptions{
			ExpectedReturn:     decimal.NewFromInt(7),
			InflationRate:      decimal.NewFromInt(3),
			SafeWithdrawalRate: decimal.NewFromInt(4),
		},
		Scenarios: []domain.Scenario{
			{Name: domain.DefaultScenarioName, Description: "Current plan"},
			{
				Name:                 "Save More",
				Description:          "Double monthly contributions",
				MonthlyContributions: domain.DecimalPtr(decimal.NewFromInt(2000)),
			},
			{
				Name:               "Conservative",
				Description:        "Lower returns and a lower withdrawal rate",
				ExpectedReturn:     domain.DecimalPtr(decimal.NewFromInt(5)),
				SafeWithdrawalRate: domain.DecimalPtr(decimal.RequireFromString("3.5")),
			},
		},
	}
}
