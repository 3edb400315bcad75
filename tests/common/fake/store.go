//go:build unit

// Package fake provides hand-written in-memory doubles for the usecase
// ports. One Store backs all of them so the availability engine and the
// write side observe the same data, the way one database would.
package fake

import (
	"context"
	"sync"
	"time"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// UoW runs the callback directly with a nil handle; the fakes ignore it.
type UoW struct{}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type Store struct {
	mu           sync.Mutex
	Reservations map[uuid.UUID]*reservation.Reservation
	Guests       map[uuid.UUID]*guest.Guest
	Rooms        map[uuid.UUID]*room.Room
	Audit        []shared.AuditEntry
}

func NewStore(rooms ...*room.Room) *Store {
	s := &Store{
		Reservations: make(map[uuid.UUID]*reservation.Reservation),
		Guests:       make(map[uuid.UUID]*guest.Guest),
		Rooms:        make(map[uuid.UUID]*room.Room),
	}
	for _, rm := range rooms {
		s.Rooms[rm.ID()] = rm
	}
	return s
}

func (s *Store) Seed(reservations ...*reservation.Reservation) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range reservations {
		s.Reservations[res.ID()] = res
	}
	return s
}

func (s *Store) ResetAudit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Audit = nil
}

// Reservations port.

func (s *Store) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reservations[res.ID()] = res
	return nil
}

func (s *Store) Update(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	s.Reservations[res.ID()] = res
	return nil
}

func (s *Store) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.Reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (s *Store) FindOverlapping(_ context.Context, _ db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time, statuses []reservation.Status) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*reservation.Reservation
	for _, r := range s.Reservations {
		if r.RoomID() != roomID || !statusIn(r.Status(), statuses) {
			continue
		}
		if r.Stay().CheckIn().Before(checkOut) && r.Stay().CheckOut().After(checkIn) {
			out = append(out, r)
		}
	}
	return out, nil
}

func statusIn(status reservation.Status, statuses []reservation.Status) bool {
	for _, st := range statuses {
		if st == status {
			return true
		}
	}
	return false
}

// Availability port, mirroring the SQL predicates in-memory.

func (s *Store) FindConflictCandidates(_ context.Context, _ db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod, excludeID uuid.UUID) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	floor := reservation.NormalizeCheckOut(stay.CheckIn())
	var out []*reservation.Reservation
	for _, r := range s.Reservations {
		if r.RoomID() != roomID || r.ID() == excludeID || !r.Occupies() {
			continue
		}
		if r.Stay().CheckIn().Before(stay.CheckOut()) && !r.Stay().CheckOut().Before(floor) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) FindCoveringDate(_ context.Context, _ db.DBTX, roomID uuid.UUID, date time.Time) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Reservations {
		if r.RoomID() == roomID && r.Occupies() && r.Stay().Covers(date) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *Store) HasCheckOutOn(_ context.Context, _ db.DBTX, roomID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Reservations {
		if r.RoomID() == roomID && r.ID() != excludeID && r.Occupies() &&
			r.Stay().CheckOutDate().Equal(reservation.Midnight(date)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) HasCheckInOn(_ context.Context, _ db.DBTX, roomID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Reservations {
		if r.RoomID() == roomID && r.ID() != excludeID && r.Occupies() &&
			r.Stay().CheckInDate().Equal(reservation.Midnight(date)) {
			return true, nil
		}
	}
	return false, nil
}

// Guests exposes the guest write port.
func (s *Store) GuestWrites() Guests { return Guests{s} }

type Guests struct{ store *Store }

func (g Guests) Create(_ context.Context, _ db.DBTX, gs *guest.Guest) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	g.store.Guests[gs.ID()] = gs
	return nil
}

func (g Guests) Update(_ context.Context, _ db.DBTX, gs *guest.Guest) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	g.store.Guests[gs.ID()] = gs
	return nil
}

func (g Guests) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*guest.Guest, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	gs, ok := g.store.Guests[id]
	if !ok {
		return nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return gs, nil
}

// RoomReads exposes the room read port.
func (s *Store) RoomReads() Rooms { return Rooms{s} }

type Rooms struct{ store *Store }

func (r Rooms) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*room.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rm, ok := r.store.Rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (r Rooms) FindActiveWithCapacity(_ context.Context, _ db.DBTX, minCapacity int) ([]*room.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*room.Room
	for _, rm := range r.store.Rooms {
		if rm.IsActive() && rm.Capacity() >= minCapacity {
			out = append(out, rm)
		}
	}
	return out, nil
}

// AuditWrites exposes the audit append port.
func (s *Store) AuditWrites() AuditLog { return AuditLog{s} }

type AuditLog struct{ store *Store }

func (a AuditLog) Append(_ context.Context, _ db.DBTX, entry shared.AuditEntry) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.Audit = append(a.store.Audit, entry)
	return nil
}

func (a AuditLog) PurgeOlderThan(_ context.Context, _ db.DBTX, _ time.Time) (int64, error) {
	return 0, nil
}
