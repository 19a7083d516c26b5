package usecase

import (
	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		UserID:       u.UserID,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		BusinessName: u.BusinessName,
		Address:      u.Address,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		CreatedBy:    u.CreatedBy,
		UpdatedAt:    u.UpdatedAt,
		UpdatedBy:    u.UpdatedBy,
		DeletedAt:    u.DeletedAt,
		DeletedBy:    u.DeletedBy,
	}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:            c.ID,
		CustomerID:    c.CustomerID,
		OwnerID:       c.OwnerID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Addresses:     c.Addresses,
		GSTNumber:     c.GSTNumber,
		PANNumber:     c.PANNumber,
		PaymentTerms:  c.PaymentTerms,
		CreditLimit:   c.CreditLimit,
		Notes:         c.Notes,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		UpdatedAt:     c.UpdatedAt,
		UpdatedBy:     c.UpdatedBy,
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:               s.ID,
		SupplierID:       s.SupplierID,
		OwnerID:          s.OwnerID,
		Name:             s.Name,
		ContactPerson:    s.ContactPerson,
		Email:            s.Email,
		Phone:            s.Phone,
		Addresses:        s.Addresses,
		GSTNumber:        s.GSTNumber,
		PANNumber:        s.PANNumber,
		BankDetails:      s.BankDetails,
		PaymentTerms:     s.PaymentTerms,
		CreditLimit:      s.CreditLimit,
		Rating:           s.Rating,
		ProductsSupplied: s.ProductsSupplied,
		Notes:            s.Notes,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		CreatedBy:        s.CreatedBy,
		UpdatedAt:        s.UpdatedAt,
		UpdatedBy:        s.UpdatedBy,
		DeletedAt:        s.DeletedAt,
		DeletedBy:        s.DeletedBy,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func partyFromRequest(in dto.PartyFields, owner string) entity.Party {
	p := entity.Party{
		OwnerID:       owner,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Addresses:     dto.Present(in.Addresses),
		GSTNumber:     in.GSTNumber,
		PANNumber:     in.PANNumber,
		PaymentTerms:  in.PaymentTerms,
		Notes:         in.Notes,
	}
	if in.CreditLimit != nil {
		p.CreditLimit = *in.CreditLimit
	}
	p.ApplyDefaults()
	return p
}

func partyPatchFromRequest(in dto.PartyPatchFields) entity.PartyPatch {
	return entity.PartyPatch{
		OwnerID:       in.OwnerID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Addresses:     dto.Present(in.Addresses),
		GSTNumber:     in.GSTNumber,
		PANNumber:     in.PANNumber,
		PaymentTerms:  in.PaymentTerms,
		CreditLimit:   in.CreditLimit,
		Notes:         in.Notes,
		Status:        in.Status,
		UpdatedBy:     in.UpdatedBy,
	}
}

// validStatus acepta nil (no enviado) o uno de los estados conocidos.
func validStatus(s *string) bool {
	return s == nil || *s == entity.StatusActive || *s == entity.StatusInactive
}
