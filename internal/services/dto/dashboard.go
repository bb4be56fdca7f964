package dto

// PaymentInsight - пара метка/сумма для графика платежей.
type PaymentInsight struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
