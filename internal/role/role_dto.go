package role

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=manager supervisor hr safety security admin employee"`
}

type UpdateRoleRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=manager supervisor hr safety security admin employee"`
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}
