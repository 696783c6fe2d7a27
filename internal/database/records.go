package database

import (
	"encoding/json"
	"fmt"

	"github.com/Rohanrwt/Naqsh-Resort-MVP/internal/models"
)

// Typed wholesale accessors over the raw collection documents. Every
// mutation rewrites the whole collection.

// Bookings reads the bookings collection
func (s *Store) Bookings() ([]models.Booking, error) {
	var out []models.Booking
	if err := s.readJSON(CollectionBookings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteBookings replaces the bookings collection
func (s *Store) WriteBookings(bookings []models.Booking) error {
	return s.writeJSON(CollectionBookings, bookings)
}

// Inquiries reads the inquiries collection
func (s *Store) Inquiries() ([]models.Inquiry, error) {
	var out []models.Inquiry
	if err := s.readJSON(CollectionInquiries, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteInquiries replaces the inquiries collection
func (s *Store) WriteInquiries(inquiries []models.Inquiry) error {
	return s.writeJSON(CollectionInquiries, inquiries)
}

// Sessions reads the sessions collection
func (s *Store) Sessions() ([]models.Session, error) {
	var out []models.Session
	if err := s.readJSON(CollectionSessions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteSessions replaces the sessions collection
func (s *Store) WriteSessions(sessions []models.Session) error {
	return s.writeJSON(CollectionSessions, sessions)
}

// Admins reads the admins collection
func (s *Store) Admins() ([]models.Admin, error) {
	var out []models.Admin
	if err := s.readJSON(CollectionAdmins, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAdmins replaces the admins collection
func (s *Store) WriteAdmins(admins []models.Admin) error {
	return s.writeJSON(CollectionAdmins, admins)
}

func (s *Store) readJSON(name string, v any) error {
	data, err := s.Read(name)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode collection %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	return s.Write(name, data)
}
