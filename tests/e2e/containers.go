//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// sharedContainer is started once per test process and reused by every suite.
type sharedContainer struct {
	once      sync.Once
	port      nat.Port
	request   func() testcontainers.ContainerRequest
	container testcontainers.Container
	err       error
}

var (
	postgresContainer = &sharedContainer{port: "5432/tcp", request: postgresRequest}
	redisContainer    = &sharedContainer{port: "6379/tcp", request: redisRequest}
)

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=256m", // データはRAM上に置く
		},
		// 読み取り中心のテストなので耐久性関連は全て切る
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(60 * time.Second),
		Name:   "car-rental-pricing-postgres-e2e",
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"}, // 永続化なし
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		Name:         "car-rental-pricing-redis-e2e",
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

// ------------------------------------------------------------
// コンテナを一度だけ起動し、接続先を返す
// ------------------------------------------------------------
func (s *sharedContainer) start(t *testing.T) ContainerInfo {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		req := s.request()
		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if s.err != nil {
			s.err = fmt.Errorf("start %s: %w", req.Image, s.err)
			return
		}

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.container.Terminate(ctx); err != nil {
				slog.Warn("コンテナの終了に失敗しました", "image", req.Image, "error", err.Error())
			}
		})
	})
	require.NoError(t, s.err, "コンテナの起動に失敗")

	info, err := hostPort(s.container, s.port)
	require.NoError(t, err, "コンテナ情報の取得に失敗")
	return info
}

func hostPort(c testcontainers.Container, port nat.Port) (ContainerInfo, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}
