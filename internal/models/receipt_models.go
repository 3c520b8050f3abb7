package models

// ReceiptAnalysisRequest загруженный чек и подсказки клиента
type ReceiptAnalysisRequest struct {
	Image     []byte
	MimeType  string
	AmountUsd float64
	Asset     string
}

// ReceiptAnalysisResponse комиссии, найденные на чеке, и сравнение с Loadit
type ReceiptAnalysisResponse struct {
	ReceiptID        string         `json:"receiptId"`
	Asset            string         `json:"asset"`
	AmountUsd        float64        `json:"amountUsd"`
	TotalFee         float64        `json:"totalFee"`
	FeePercent       float64        `json:"feePercent"`
	LoaditMinPercent float64        `json:"loaditMinPercent"`
	LoaditMaxPercent float64        `json:"loaditMaxPercent"`
	LoaditMinFee     float64        `json:"loaditMinFee"`
	LoaditMaxFee     float64        `json:"loaditMaxFee"`
	Breakdown        []string       `json:"breakdown"`
	Comment          string         `json:"comment"`
	RawExtraction    map[string]any `json:"rawExtraction"`
}
