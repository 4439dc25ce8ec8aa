package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"storyboard-server/modules/blueprint"
	"storyboard-server/modules/common/config"
	redisutil "storyboard-server/modules/common/redis"
	"storyboard-server/modules/quota"
	"storyboard-server/modules/suggest"
)

// 서버 메트릭
type ServerMetrics struct {
	TotalRequests int            `json:"totalRequests"`
	ByPath        map[string]int `json:"byPath"`
	StartTime     time.Time      `json:"startTime"`
	mutex         sync.RWMutex
}

var metrics = &ServerMetrics{
	ByPath:    make(map[string]int),
	StartTime: time.Now(),
}

// countRequests - 경로별 요청 카운트 미들웨어
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.mutex.Lock()
		metrics.TotalRequests++
		metrics.ByPath[r.URL.Path]++
		metrics.mutex.Unlock()

		next.ServeHTTP(w, r)
	})
}

// CORS 헤더 추가
func enableCORS(allowedOrigin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "storyboard-blueprint",
	})
}

// 서버 메트릭 조회 엔드포인트
func getMetrics(w http.ResponseWriter, r *http.Request) {
	metrics.mutex.RLock()
	byPath := make(map[string]int, len(metrics.ByPath))
	for path, count := range metrics.ByPath {
		byPath[path] = count
	}
	total := metrics.TotalRequests
	start := metrics.StartTime
	metrics.mutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"server": map[string]interface{}{
			"uptime":        time.Since(start).String(),
			"startTime":     start,
			"totalRequests": total,
		},
		"requestsByPath": byPath,
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Redis 연결 (실패해도 서버는 동작 - 비회원 제한만 비활성화)
	rdb := redisutil.Connect(cfg)
	if rdb != nil {
		log.Println("✅ Redis connected successfully")
	}

	// 서비스/핸들러 초기화
	quotaService := quota.NewService(rdb, cfg)
	blueprintHandler := blueprint.NewHandler(quotaService)
	quotaHandler := quota.NewHandler(quotaService)
	suggestHandler := suggest.NewHandler()

	// 라우터 설정
	r := mux.NewRouter()

	// 미들웨어 적용
	r.Use(enableCORS(cfg.AllowedOrigin))
	r.Use(countRequests)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/metrics", getMetrics).Methods("GET")
	r.HandleFunc("/api/blueprint/generate", blueprintHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/blueprint/stream", blueprintHandler.HandleStream)
	r.HandleFunc("/api/suggest/ideas", suggestHandler.HandleIdeas).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/quota/guest", quotaHandler.HandleGuestQuota).Methods("GET", "OPTIONS")

	log.Printf("🚀 Storyboard Blueprint Server starting on port %s", cfg.Port)
	log.Printf("🎬 Generate endpoint: http://localhost:%s/api/blueprint/generate", cfg.Port)
	log.Printf("📡 Stream endpoint: ws://localhost:%s/api/blueprint/stream", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
