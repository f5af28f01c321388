package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jobboard/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// rowFunc 讓函式直接實作 pgx.Row
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func errRow(err error) pgx.Row {
	return rowFunc(func(...any) error { return err })
}

type memUser struct{ name, location string }

type memFreelancer struct{ bio, picture string }

// memState 以 map 模擬 app_user / employer / freelancer 三張表
type memState struct {
	users       map[int]memUser
	employers   map[int]float64
	freelancers map[int]memFreelancer
}

func newMemState() memState {
	return memState{
		users:       map[int]memUser{},
		employers:   map[int]float64{},
		freelancers: map[int]memFreelancer{},
	}
}

func (s memState) clone() memState {
	c := newMemState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.employers {
		c.employers[k] = v
	}
	for k, v := range s.freelancers {
		c.freelancers[k] = v
	}
	return c
}

func coalesce(v *string, old string) string {
	if v == nil {
		return old
	}
	return *v
}

func affected(n int) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", n))
}

func (s memState) exec(sql string, args ...any) (pgconn.CommandTag, error) {
	switch sql {
	case updateEmployerBudgetSQL:
		id := args[1].(int)
		if _, ok := s.employers[id]; !ok {
			return affected(0), nil
		}
		if b := args[0].(*float64); b != nil {
			s.employers[id] = *b
		}
	case updateFreelancerSQL:
		id := args[2].(int)
		f, ok := s.freelancers[id]
		if !ok {
			return affected(0), nil
		}
		f.bio = coalesce(args[0].(*string), f.bio)
		f.picture = coalesce(args[1].(*string), f.picture)
		s.freelancers[id] = f
	case updateAppUserSQL:
		id := args[2].(int)
		u, ok := s.users[id]
		if !ok {
			return affected(0), nil
		}
		u.name = coalesce(args[0].(*string), u.name)
		u.location = coalesce(args[1].(*string), u.location)
		s.users[id] = u
	default:
		return pgconn.CommandTag{}, fmt.Errorf("memState: unexpected sql %q", sql)
	}
	return affected(1), nil
}

// memDB 提供具交易語意的 FakeDB：Exec 寫入暫存副本，Commit 才套用
type memDB struct {
	mu        sync.Mutex
	state     memState
	failOn    map[string]error
	stmts     []string
	commits   int
	rollbacks int
}

func newMemDB() *memDB {
	return &memDB{state: newMemState(), failOn: map[string]error{}}
}

func (m *memDB) queryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := args[0].(int)
	u, ok := m.state.users[id]
	switch sql {
	case selectEmployerProfileSQL:
		budget, isEmployer := m.state.employers[id]
		if !ok || !isEmployer {
			return errRow(pgx.ErrNoRows)
		}
		return rowFunc(func(dest ...any) error {
			*dest[0].(*string) = u.name
			*dest[1].(*string) = u.location
			*dest[2].(*float64) = budget
			return nil
		})
	case selectFreelancerProfileSQL:
		f, isFreelancer := m.state.freelancers[id]
		if !ok || !isFreelancer {
			return errRow(pgx.ErrNoRows)
		}
		return rowFunc(func(dest ...any) error {
			*dest[0].(*string) = u.name
			*dest[1].(*string) = u.location
			*dest[2].(*string) = f.bio
			*dest[3].(*string) = f.picture
			return nil
		})
	}
	return errRow(errors.New("memDB: unexpected query"))
}

func (m *memDB) begin(context.Context) (pgx.Tx, error) {
	m.mu.Lock()
	staged := m.state.clone()
	m.mu.Unlock()
	done := false
	return &database.FakeTx{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.stmts = append(m.stmts, sql)
			if err, ok := m.failOn[sql]; ok {
				return pgconn.CommandTag{}, err
			}
			return staged.exec(sql, args...)
		},
		CommitFn: func(context.Context) error {
			if done {
				return pgx.ErrTxClosed
			}
			done = true
			m.mu.Lock()
			defer m.mu.Unlock()
			m.state = staged
			m.commits++
			return nil
		},
		RollbackFn: func(context.Context) error {
			if done {
				return pgx.ErrTxClosed
			}
			done = true
			m.mu.Lock()
			defer m.mu.Unlock()
			m.rollbacks++
			return nil
		},
	}, nil
}

func (m *memDB) db() *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: m.queryRow,
		BeginFn:    m.begin,
	}
}
