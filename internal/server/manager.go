// Package server exposes battles over a websocket service: clients create
// or join a battle, submit actions, and receive state views after every
// change.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberfall/battle-server-go/internal/config"
	"github.com/emberfall/battle-server-go/internal/core"
	"github.com/emberfall/battle-server-go/internal/game"
	"github.com/emberfall/battle-server-go/internal/game/effects"
	"github.com/emberfall/battle-server-go/internal/game/legal"
)

// Manager owns all running battles. All engine access goes through the
// manager's per-battle lock; the engine itself is single-threaded.
type Manager struct {
	mu      sync.RWMutex
	battles map[uuid.UUID]*battleSession

	definitions []*game.CardDefinition
	executor    *effects.Executor
	cfg         config.GameConfig
	log         *zap.Logger
}

type battleSession struct {
	mu    sync.Mutex
	state *game.BattleState
}

// NewManager creates a battle manager over the given card pool.
func NewManager(definitions []*game.CardDefinition, cfg config.GameConfig, log *zap.Logger) *Manager {
	return &Manager{
		battles:     make(map[uuid.UUID]*battleSession),
		definitions: definitions,
		executor:    effects.NewExecutor(log),
		cfg:         cfg,
		log:         log,
	}
}

// CreateBattle builds and starts a new battle, returning its identifier.
func (m *Manager) CreateBattle() uuid.UUID {
	id := uuid.New()
	seed := m.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	b := game.NewBattleState(id, seed)
	b.Tracing = m.cfg.Tracing
	for _, p := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for i := 0; i < m.cfg.DeckSize; i++ {
			def := m.definitions[i%len(m.definitions)]
			b.Cards.CreateCard(def, p, game.ZoneDeck)
		}
	}
	m.executor.StartBattle(b, m.cfg.StartingHand)
	legal.Populate(b)

	m.mu.Lock()
	m.battles[id] = &battleSession{state: b}
	m.mu.Unlock()

	m.log.Info("battle created",
		zap.String("battle", id.String()),
		zap.Uint64("seed", seed),
	)
	return id
}

// PerformAction applies one player action to a battle and refreshes its
// legal-actions cache. Engine faults are recovered into errors so a
// defective battle cannot take the server down.
func (m *Manager) PerformAction(id uuid.UUID, player core.PlayerName, action game.BattleAction) (err error) {
	session, ok := m.session(id)
	if !ok {
		return fmt.Errorf("battle %s not found", id)
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("engine fault during action",
				zap.String("battle", id.String()),
				zap.Any("fault", r),
			)
			err = fmt.Errorf("internal engine fault: %v", r)
		}
	}()

	if err := m.executor.ApplyAction(session.state, player, action); err != nil {
		return err
	}
	legal.Populate(session.state)
	return nil
}

// View renders a battle from one player's perspective.
func (m *Manager) View(id uuid.UUID, player core.PlayerName) (*BattleView, error) {
	session, ok := m.session(id)
	if !ok {
		return nil, fmt.Errorf("battle %s not found", id)
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return buildView(session.state, player), nil
}

func (m *Manager) session(id uuid.UUID) (*battleSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.battles[id]
	return s, ok
}
