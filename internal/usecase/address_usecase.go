package usecase

import (
	"context"
	"sort"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Address sort keys
const (
	SortByCity  = "city"
	SortByState = "state"
)

type AddressUsecase interface {
	GetAddresses(ctx context.Context, sortBy string) (*dto.AddressListResponse, error)
}

type addressUsecase struct {
	log         *logrus.Logger
	session     SessionUsecase
	addressRepo repository.AddressRepository
	locale      language.Tag
}

// NewAddressUsecase sorts with the collation rules of locale, e.g. "en-US".
// An unparseable locale falls back to language.Und.
func NewAddressUsecase(log *logrus.Logger, session SessionUsecase, addressRepo repository.AddressRepository, locale string) AddressUsecase {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warnf("Unknown UI locale %q, using root collation: %+v", locale, err)
		tag = language.Und
	}
	return &addressUsecase{
		log:         log,
		session:     session,
		addressRepo: addressRepo,
		locale:      tag,
	}
}

// GetAddresses returns all addresses sorted by city (default) or state.
func (u *addressUsecase) GetAddresses(ctx context.Context, sortBy string) (*dto.AddressListResponse, error) {
	if sortBy == "" {
		sortBy = SortByCity
	}
	if sortBy != SortByCity && sortBy != SortByState {
		return nil, &ValidationError{Fields: map[string]string{"sort": "sort must be one of city state"}}
	}

	s, err := currentSession(u.session, AddressesPageRoles...)
	if err != nil {
		return nil, err
	}

	addresses, err := u.addressRepo.FindAll(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to find all addresses: %+v", err)
		return nil, err
	}

	SortAddresses(addresses, sortBy, u.locale)
	return &dto.AddressListResponse{
		Addresses: nonNil(addresses),
		Total:     len(addresses),
		SortBy:    sortBy,
	}, nil
}

// SortAddresses sorts in place using locale-aware comparison. The sort is
// stable so equal keys keep the backend order.
func SortAddresses(addresses []entity.Address, sortBy string, tag language.Tag) {
	col := collate.New(tag, collate.IgnoreCase)
	key := func(a entity.Address) string { return a.City }
	if sortBy == SortByState {
		key = func(a entity.Address) string { return a.State }
	}
	sort.SliceStable(addresses, func(i, j int) bool {
		return col.CompareString(key(addresses[i]), key(addresses[j])) < 0
	})
}
