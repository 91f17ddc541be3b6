package mapper

import (
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/entity"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToDTO(u entity.User) dto.UserDTO {
	return dto.UserDTO{
		Email:  u.Email,
		Tenant: u.Tenant,
		Role:   string(u.Role),
	}
}

func (m *UserMapper) ToDemoAccounts(accounts []entity.Account) []dto.DemoAccountDTO {
	res := make([]dto.DemoAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, dto.DemoAccountDTO{
			Email:  a.Email,
			Tenant: a.Tenant,
			Role:   string(a.Role),
		})
	}
	return res
}
