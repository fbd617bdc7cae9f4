package request

import "parkspot/internal/usecase/commands"

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

func (r *UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{Name: r.Name, Phone: r.Phone}
}
