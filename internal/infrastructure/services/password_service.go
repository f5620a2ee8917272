package services

import "github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"

// BcryptPasswordService hashes passwords with bcrypt. Cost zero means bcrypt's default.
type BcryptPasswordService struct {
	Cost int
}

func NewBcryptPasswordService(cost int) *BcryptPasswordService {
	return &BcryptPasswordService{Cost: helpers.ClampCost(cost)}
}

func (s BcryptPasswordService) Hash(plain string) (string, error) {
	return helpers.HashPassword(plain, s.Cost)
}

func (BcryptPasswordService) Verify(plain, hash string) bool {
	return helpers.CompareHashAndPassword(hash, plain)
}
