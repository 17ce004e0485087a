package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BeforeCreate hooks assign IDs application-side, so inserts behave the same
// on databases without gen_random_uuid.

func (u *User) BeforeCreate(*gorm.DB) error           { ensureID(&u.ID); return nil }
func (v *Vendor) BeforeCreate(*gorm.DB) error         { ensureID(&v.ID); return nil }
func (b *Booking) BeforeCreate(*gorm.DB) error        { ensureID(&b.ID); return nil }
func (s *BookingService) BeforeCreate(*gorm.DB) error { ensureID(&s.ID); return nil }
func (p *BookingProduct) BeforeCreate(*gorm.DB) error { ensureID(&p.ID); return nil }
func (s *CatalogService) BeforeCreate(*gorm.DB) error { ensureID(&s.ID); return nil }
func (p *CatalogProduct) BeforeCreate(*gorm.DB) error { ensureID(&p.ID); return nil }
func (s *VendorService) BeforeCreate(*gorm.DB) error  { ensureID(&s.ID); return nil }
func (p *VendorProduct) BeforeCreate(*gorm.DB) error  { ensureID(&p.ID); return nil }
func (e *Employee) BeforeCreate(*gorm.DB) error       { ensureID(&e.ID); return nil }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
