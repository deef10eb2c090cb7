package converter

import (
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
)

// PatientRequestToEntity converts a PatientRequest DTO to a Patient entity
func PatientRequestToEntity(req *dto.PatientRequest) *entity.Patient {
	if req == nil {
		return nil
	}

	patient := &entity.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		AddressID: req.AddressID,
	}

	if req.Address != nil {
		patient.Address = &entity.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		}
	}

	return patient
}
