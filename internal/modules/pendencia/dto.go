package pendencia

import "time"

type CreatePendenciaRequest struct {
	OrderID      int64      `json:"ordem_servico_id" binding:"required"`
	Tipo         string     `json:"tipo" binding:"required"`
	Descricao    string     `json:"descricao" binding:"required"`
	Responsavel  string     `json:"responsavel"`
	DataPrevista *time.Time `json:"data_prevista"`
}

type UpdatePendenciaRequest struct {
	Tipo         *string    `json:"tipo"`
	Status       *string    `json:"status"`
	Descricao    *string    `json:"descricao"`
	Responsavel  *string    `json:"responsavel"`
	DataPrevista *time.Time `json:"data_prevista"`
}

type ResolvePendenciaRequest struct {
	Cancelar bool `json:"cancelar"`
}
