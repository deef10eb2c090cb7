package usecase

import (
	"context"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DentistUsecase interface {
	GetDentists(ctx context.Context) (*dto.DentistListResponse, error)
}

type dentistUsecase struct {
	log         *logrus.Logger
	session     SessionUsecase
	dentistRepo repository.DentistRepository
}

func NewDentistUsecase(log *logrus.Logger, session SessionUsecase, dentistRepo repository.DentistRepository) DentistUsecase {
	return &dentistUsecase{
		log:         log,
		session:     session,
		dentistRepo: dentistRepo,
	}
}

// GetDentists returns all dentists
func (u *dentistUsecase) GetDentists(ctx context.Context) (*dto.DentistListResponse, error) {
	s, err := currentSession(u.session, DentistsPageRoles...)
	if err != nil {
		return nil, err
	}

	dentists, err := u.dentistRepo.FindAll(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to find all dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: nonNil(dentists),
		Total:    len(dentists),
	}, nil
}
