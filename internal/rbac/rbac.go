package rbac

import (
	"github.com/casbin/casbin/v2"
)

// Roles dikenal oleh portal. Hirarki (superadmin > admin > employee)
// didefinisikan lewat grouping policy di policy.csv.
const (
	RoleEmployee   = "employee"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

//go:generate mockgen -source=rbac.go -destination=mock/rbac_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(modelPath, policyPath string) (Service, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, err
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
