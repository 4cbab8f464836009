package dto

import "github.com/shopspring/decimal"

// PredictRequest é o corpo do POST /v1/predict.
type PredictRequest struct {
	DiasRestantes  *int            `json:"diasRestantes" validate:"required,min=-1,max=20"`
	EstoqueVendido *int            `json:"estoqueVendido" validate:"required,min=0,max=100"`
	Demanda        string          `json:"demanda" validate:"required,oneof=baixa media alta"`
	Categoria      string          `json:"categoria" validate:"required,oneof=fruta verdura legume"`
	PrecoBase      decimal.Decimal `json:"precoBase" validate:"required,gt=0"`
}

// PredictResultado é o núcleo da resposta de predição.
type PredictResultado struct {
	ProbabilidadeVenderTudo float64         `json:"probabilidadeVenderTudo"`
	DescontoIdeal           int             `json:"descontoIdeal"`
	FatorPreco              decimal.Decimal `json:"fatorPreco"`
	PrecoComDesconto        decimal.Decimal `json:"precoComDesconto"`
	Economia                decimal.Decimal `json:"economia"`
}

// PredictResponse é a resposta do POST /v1/predict.
type PredictResponse struct {
	Input        PredictRequest   `json:"input"`
	Resultado    PredictResultado `json:"resultado"`
	Recomendacao string           `json:"recomendacao"`
}

// PredictBatchRequest é o corpo do POST /v1/predict/batch.
type PredictBatchRequest struct {
	Produtos []PredictRequest `json:"produtos" validate:"required,min=1,dive"`
}

// PredictBatchItem é o resultado (ou erro) de um item do batch.
type PredictBatchItem struct {
	Input     PredictRequest    `json:"input"`
	Resultado *PredictResultado `json:"resultado,omitempty"`
	Erro      string            `json:"erro,omitempty"`
}

// PredictBatchResponse é a resposta do POST /v1/predict/batch.
type PredictBatchResponse struct {
	Total      int                `json:"total"`
	Sucesso    int                `json:"sucesso"`
	Falhas     int                `json:"falhas"`
	Resultados []PredictBatchItem `json:"resultados"`
}

// PredictStatusResponse é a resposta do GET /v1/predict/status.
type PredictStatusResponse struct {
	Status   string `json:"status"`
	Scorer   string `json:"scorer"`
	Mensagem string `json:"mensagem"`
}
