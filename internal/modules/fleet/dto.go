package fleet

type CreateVehicleRequest struct {
	Placa  string `json:"placa" binding:"required"`
	Modelo string `json:"modelo" binding:"required"`
	Marca  string `json:"marca"`
	Ano    int    `json:"ano"`
	Cor    string `json:"cor"`
}

type UpdateVehicleRequest struct {
	Modelo *string `json:"modelo"`
	Marca  *string `json:"marca"`
	Ano    *int    `json:"ano"`
	Cor    *string `json:"cor"`
}

type AllocateRequest struct {
	TecnicoID int64 `json:"tecnico_id" binding:"required"`
	Odometro  int64 `json:"odometro"`
}

type ReleaseRequest struct {
	Odometro int64 `json:"odometro"`
}
