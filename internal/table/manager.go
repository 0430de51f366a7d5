package table

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/palemoky/landlord-rules/internal/apperrors"
	"github.com/palemoky/landlord-rules/internal/logger"
	"github.com/palemoky/landlord-rules/internal/storage"
)

// Store 牌桌快照持久化
type Store interface {
	SaveTable(ctx context.Context, data *storage.TableData) error
	LoadTable(ctx context.Context, id string) (*storage.TableData, error)
	DeleteTable(ctx context.Context, id string) error
	ListTableIDs(ctx context.Context) ([]string, error)
	SetTableExpiration(ctx context.Context, id string, expiration time.Duration) error
}

// Manager 牌桌管理器。各牌桌互不共享可变状态，锁只保护索引。
type Manager struct {
	store  Store
	seed   uint64
	seq    uint64
	tables map[string]*Table
	mu     sync.RWMutex
}

// NewManager 创建牌桌管理器；store 可为 nil（不持久化），seed 非零时每张牌桌使用可复现的随机源
func NewManager(store Store, seed uint64) *Manager {
	return &Manager{
		store:  store,
		seed:   seed,
		tables: make(map[string]*Table),
	}
}

// Create 创建牌桌
func (m *Manager) Create() *Table {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := New("", m.newRand(m.seq))
	m.tables[t.ID] = t

	logger.LogInfo("table %s created", t.ID)
	return t
}

func (m *Manager) newRand(seq uint64) *rand.Rand {
	if m.seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(m.seed, seq))
}

// Get 获取内存中的牌桌
func (m *Manager) Get(id string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[id]
	if !ok {
		return nil, apperrors.ErrTableNotFound
	}
	return t, nil
}

// Count 内存中的牌桌数量
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// Tables 返回内存中的牌桌，按 ID 排序
func (m *Manager) Tables() []*Table {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tables := slices.Collect(maps.Values(m.tables))
	slices.SortFunc(tables, func(a, b *Table) int {
		return strings.Compare(a.ID, b.ID)
	})
	return tables
}

// Remove 移除牌桌，同时删除快照
func (m *Manager) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.tables, id)
	m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	if err := m.store.DeleteTable(ctx, id); err != nil {
		logger.LogError("delete table %s: %v", id, err)
		return err
	}
	return nil
}

// Save 保存牌桌快照
func (m *Manager) Save(ctx context.Context, id string) error {
	t, err := m.Get(id)
	if err != nil {
		return err
	}
	if m.store == nil {
		return nil
	}
	if err := m.store.SaveTable(ctx, t.ToTableData()); err != nil {
		logger.LogError("save table %s: %v", id, err)
		return fmt.Errorf("保存牌桌失败: %w", err)
	}
	return nil
}

// Load 优先返回内存中的牌桌，否则从快照恢复
func (m *Manager) Load(ctx context.Context, id string) (*Table, error) {
	if t, err := m.Get(id); err == nil {
		return t, nil
	}
	if m.store == nil {
		return nil, apperrors.ErrTableNotFound
	}

	data, err := m.store.LoadTable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("加载牌桌失败: %w", err)
	}
	if data == nil {
		return nil, apperrors.ErrTableNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 并发加载时以先放入的为准
	if t, ok := m.tables[id]; ok {
		return t, nil
	}
	m.seq++
	t, err := FromTableData(data, m.newRand(m.seq))
	if err != nil {
		return nil, err
	}
	m.tables[id] = t
	return t, nil
}

// Recover 启动时从存储恢复所有牌桌快照，损坏的快照跳过并记录日志，返回恢复的数量
func (m *Manager) Recover(ctx context.Context) (int, error) {
	if m.store == nil {
		return 0, nil
	}

	ids, err := m.store.ListTableIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("列出牌桌失败: %w", err)
	}

	recovered := 0
	for _, id := range ids {
		if _, err := m.Load(ctx, id); err != nil {
			logger.LogError("recover table %s: %v", id, err)
			continue
		}
		recovered++
	}

	logger.LogInfo("recovered %d/%d tables", recovered, len(ids))
	return recovered, nil
}

// Touch 延长牌桌快照的过期时间
func (m *Manager) Touch(ctx context.Context, id string, expiration time.Duration) error {
	if _, err := m.Get(id); err != nil {
		return err
	}
	if m.store == nil {
		return nil
	}
	if err := m.store.SetTableExpiration(ctx, id, expiration); err != nil {
		return fmt.Errorf("更新牌桌过期时间失败: %w", err)
	}
	return nil
}
