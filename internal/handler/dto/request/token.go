package request

type MintTokenRequest struct {
	VehiclePlate string `json:"vehiclePlate" binding:"required,max=32"`
}
