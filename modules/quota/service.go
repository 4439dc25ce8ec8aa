package quota

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"storyboard-server/modules/common/config"
)

// Service - 비회원 세션당 블루프린트 생성 횟수 제한.
// Redis가 없으면 제한 없이 통과시킨다 (개발 환경).
type Service struct {
	redis   *redis.Client
	maxUses int
	ttl     time.Duration
}

func NewService(rdb *redis.Client, cfg *config.Config) *Service {
	if rdb == nil {
		log.Println("⚠️ [Quota] Redis unavailable - guest limit disabled")
	}
	return &Service{
		redis:   rdb,
		maxUses: cfg.GuestMaxGenerations,
		ttl:     time.Duration(cfg.GuestLimitTTLHours) * time.Hour,
	}
}

// MaxUses - 설정된 최대 생성 횟수
func (s *Service) MaxUses() int {
	return s.maxUses
}

func usageKey(sessionID string) string {
	return fmt.Sprintf("guest:usage:%s", sessionID)
}

// CheckGuestLimit - 비회원 사용 제한 확인
func (s *Service) CheckGuestLimit(ctx context.Context, sessionID string) (*GuestUsage, bool, error) {
	if s.redis == nil {
		return &GuestUsage{SessionID: sessionID, UsedCount: 0}, false, nil
	}

	data, err := s.redis.Get(ctx, usageKey(sessionID)).Result()
	if err == redis.Nil {
		// 첫 사용
		now := time.Now()
		return &GuestUsage{
			SessionID:   sessionID,
			UsedCount:   0,
			FirstUsedAt: now,
			LastUsedAt:  now,
		}, false, nil
	}
	if err != nil {
		log.Printf("⚠️ [Quota] Redis error: %v", err)
		return nil, false, err
	}

	var usage GuestUsage
	if err := json.Unmarshal([]byte(data), &usage); err != nil {
		log.Printf("⚠️ [Quota] Failed to parse guest usage: %v", err)
		return nil, false, err
	}

	return &usage, usage.UsedCount >= s.maxUses, nil
}

// IncrementGuestUsage - 비회원 사용 횟수 증가
func (s *Service) IncrementGuestUsage(ctx context.Context, sessionID string) (*GuestUsage, error) {
	if s.redis == nil {
		return &GuestUsage{SessionID: sessionID, UsedCount: 1}, nil
	}

	usage, _, err := s.CheckGuestLimit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	usage.UsedCount++
	usage.LastUsedAt = time.Now()
	if usage.FirstUsedAt.IsZero() {
		usage.FirstUsedAt = time.Now()
	}

	data, err := json.Marshal(usage)
	if err != nil {
		return nil, err
	}

	if err := s.redis.Set(ctx, usageKey(sessionID), data, s.ttl).Err(); err != nil {
		log.Printf("⚠️ [Quota] Failed to save guest usage: %v", err)
		return nil, err
	}

	log.Printf("📊 [Quota] Guest usage updated: session=%s, count=%d/%d",
		sessionID, usage.UsedCount, s.maxUses)

	return usage, nil
}
