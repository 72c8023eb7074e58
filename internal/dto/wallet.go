package dto

type WalletResponseDTO struct {
	Balance int64  `json:"balance" example:"4500000"`
	Display string `json:"display" example:"₦45,000.00"`
}

type ContributionRequestDTO struct {
	Amount int64 `json:"amount" example:"500000"`
}
