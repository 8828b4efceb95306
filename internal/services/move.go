package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/normalization"
	"github.com/umzugo/packapp-backend/internal/repos"
	"github.com/umzugo/packapp-backend/internal/types"
	"github.com/umzugo/packapp-backend/internal/utils"
)

const moveDateLayout = "2006-01-02"

// standardRoomDefs is the fixed room set auto-created for every new move.
var standardRoomDefs = []struct {
	Name     string
	RoomType string
}{
	{"Wohnzimmer", "Wohnzimmer"},
	{"Schlafzimmer", "Schlafzimmer"},
	{"Küche", "Küche"},
	{"Bad", "Bad"},
	{"Flur", "Flur"},
}

type MoveCreate struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	FromAddress         string
	ToAddress           string
	MoveDate            string
	MoveTime            string
	SpecialRequirements string
}

// MoveUpdate carries optional fields; nil means "leave unchanged". Only
// non-nil fields are written, against a fixed column list.
type MoveUpdate struct {
	CustomerName        *string
	CustomerEmail       *string
	CustomerPhone       *string
	FromAddress         *string
	ToAddress           *string
	MoveDate            *string
	MoveTime            *string
	SpecialRequirements *string
	Status              *string
}

type MoveService interface {
	// CreateMove inserts the move and seeds the standard rooms. Room seeding
	// failures are logged but do not fail the creation; the returned room
	// slice holds whatever was actually created.
	CreateMove(ctx context.Context, userID uuid.UUID, in MoveCreate) (*types.Move, []*types.Room, error)
	ListMoves(ctx context.Context, userID uuid.UUID) ([]*types.Move, error)
	GetMove(ctx context.Context, userID, moveID uuid.UUID) (*types.Move, error)
	UpdateMove(ctx context.Context, userID, moveID uuid.UUID, upd MoveUpdate) error
	DeleteMove(ctx context.Context, userID, moveID uuid.UUID) error
	// AddStandardRooms re-applies the standard set to an existing move. There
	// is deliberately no duplicate guard: calling it twice doubles the rooms.
	AddStandardRooms(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Room, error)
}

type moveService struct {
	db       *gorm.DB
	log      *logger.Logger
	moveRepo repos.MoveRepo
	roomRepo repos.RoomRepo
}

func NewMoveService(
	db *gorm.DB,
	baseLog *logger.Logger,
	moveRepo repos.MoveRepo,
	roomRepo repos.RoomRepo,
) MoveService {
	serviceLog := baseLog.With("service", "MoveService")
	return &moveService{
		db:       db,
		log:      serviceLog,
		moveRepo: moveRepo,
		roomRepo: roomRepo,
	}
}

// newMoveReference builds the human-readable booking code, e.g. UMZ-1A2B3C4D.
func newMoveReference() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("UMZ-%s", token)
}

func (ms *moveService) CreateMove(ctx context.Context, userID uuid.UUID, in MoveCreate) (*types.Move, []*types.Room, error) {
	in.CustomerName = normalization.TrimInputString(in.CustomerName)
	in.CustomerEmail = normalization.ParseInputString(in.CustomerEmail)
	in.FromAddress = normalization.TrimInputString(in.FromAddress)
	in.ToAddress = normalization.TrimInputString(in.ToAddress)

	if in.CustomerName == "" {
		return nil, nil, validationf("customer_name is required")
	}
	if in.CustomerEmail == "" || !utils.ValidEmail(in.CustomerEmail) {
		return nil, nil, validationf("a valid customer_email is required")
	}
	if in.FromAddress == "" {
		return nil, nil, validationf("from_address is required")
	}
	if in.ToAddress == "" {
		return nil, nil, validationf("to_address is required")
	}
	if _, err := time.Parse(moveDateLayout, in.MoveDate); err != nil {
		return nil, nil, validationf("move_date must be formatted as YYYY-MM-DD")
	}

	move := &types.Move{
		ID:                  uuid.New(),
		Reference:           newMoveReference(),
		UserID:              userID,
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       in.CustomerPhone,
		FromAddress:         in.FromAddress,
		ToAddress:           in.ToAddress,
		MoveDate:            in.MoveDate,
		MoveTime:            in.MoveTime,
		SpecialRequirements: in.SpecialRequirements,
		Status:              types.MoveStatusDraft,
	}
	if _, err := ms.moveRepo.Create(ctx, nil, []*types.Move{move}); err != nil {
		ms.log.Error("CreateMove failed", "error", err, "user_id", userID)
		return nil, nil, fmt.Errorf("create move: %w", err)
	}

	// Partial-success policy: the move stands even when seeding fails.
	rooms, err := ms.seedStandardRooms(ctx, move.ID)
	if err != nil {
		ms.log.Warn("Standard room seeding failed after move creation", "error", err, "move_id", move.ID)
	}
	return move, rooms, nil
}

// seedStandardRooms inserts the standard set as a batch and waits for every
// insert to settle before returning whatever succeeded.
func (ms *moveService) seedStandardRooms(ctx context.Context, moveID uuid.UUID) ([]*types.Room, error) {
	created := make([]*types.Room, len(standardRoomDefs))
	g, gctx := errgroup.WithContext(ctx)
	for i, def := range standardRoomDefs {
		i, def := i, def
		g.Go(func() error {
			room := &types.Room{
				ID:       uuid.New(),
				MoveID:   moveID,
				Name:     def.Name,
				RoomType: def.RoomType,
				Volume:   0,
			}
			if _, err := ms.roomRepo.Create(gctx, nil, []*types.Room{room}); err != nil {
				return fmt.Errorf("seed room %q: %w", def.Name, err)
			}
			created[i] = room
			return nil
		})
	}
	err := g.Wait()

	rooms := make([]*types.Room, 0, len(created))
	for _, r := range created {
		if r != nil {
			rooms = append(rooms, r)
		}
	}
	return rooms, err
}

func (ms *moveService) ListMoves(ctx context.Context, userID uuid.UUID) ([]*types.Move, error) {
	moves, err := ms.moveRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		ms.log.Error("ListMoves failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("list moves: %w", err)
	}
	return moves, nil
}

func (ms *moveService) GetMove(ctx context.Context, userID, moveID uuid.UUID) (*types.Move, error) {
	move, err := ms.moveRepo.GetOwned(ctx, nil, moveID, userID)
	if err != nil {
		ms.log.Error("GetMove failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("get move: %w", err)
	}
	if move == nil {
		return nil, ErrNotFound
	}
	return move, nil
}

func (ms *moveService) UpdateMove(ctx context.Context, userID, moveID uuid.UUID, upd MoveUpdate) error {
	fields := map[string]any{}
	if upd.CustomerName != nil {
		fields["customer_name"] = normalization.TrimInputString(*upd.CustomerName)
	}
	if upd.CustomerEmail != nil {
		email := normalization.ParseInputString(*upd.CustomerEmail)
		if !utils.ValidEmail(email) {
			return validationf("customer_email is not a valid email")
		}
		fields["customer_email"] = email
	}
	if upd.CustomerPhone != nil {
		fields["customer_phone"] = normalization.TrimInputString(*upd.CustomerPhone)
	}
	if upd.FromAddress != nil {
		fields["from_address"] = normalization.TrimInputString(*upd.FromAddress)
	}
	if upd.ToAddress != nil {
		fields["to_address"] = normalization.TrimInputString(*upd.ToAddress)
	}
	if upd.MoveDate != nil {
		if _, err := time.Parse(moveDateLayout, *upd.MoveDate); err != nil {
			return validationf("move_date must be formatted as YYYY-MM-DD")
		}
		fields["move_date"] = *upd.MoveDate
	}
	if upd.MoveTime != nil {
		fields["move_time"] = *upd.MoveTime
	}
	if upd.SpecialRequirements != nil {
		fields["special_requirements"] = *upd.SpecialRequirements
	}
	if upd.Status != nil {
		status := normalization.ParseInputString(*upd.Status)
		if !types.ValidMoveStatus(status) {
			return validationf("status must be one of draft, confirmed, completed, cancelled")
		}
		fields["status"] = status
	}
	if len(fields) == 0 {
		return validationf("no fields to update")
	}
	fields["updated_at"] = time.Now()

	rows, err := ms.moveRepo.UpdateFields(ctx, nil, moveID, userID, fields)
	if err != nil {
		ms.log.Error("UpdateMove failed", "error", err, "move_id", moveID)
		return fmt.Errorf("update move: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (ms *moveService) DeleteMove(ctx context.Context, userID, moveID uuid.UUID) error {
	rows, err := ms.moveRepo.DeleteOwned(ctx, nil, moveID, userID)
	if err != nil {
		ms.log.Error("DeleteMove failed", "error", err, "move_id", moveID)
		return fmt.Errorf("delete move: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (ms *moveService) AddStandardRooms(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Room, error) {
	move, err := ms.moveRepo.GetOwned(ctx, nil, moveID, userID)
	if err != nil {
		ms.log.Error("AddStandardRooms ownership check failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("check move ownership: %w", err)
	}
	if move == nil {
		return nil, ErrNotFound
	}
	rooms, err := ms.seedStandardRooms(ctx, moveID)
	if err != nil {
		ms.log.Warn("AddStandardRooms seeding incomplete", "error", err, "move_id", moveID)
	}
	return rooms, nil
}
