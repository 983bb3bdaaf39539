package db

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/gmaschi/go-recipes-social/pkg/config/env"
	_ "github.com/lib/pq"
)

var (
	testDB      *sql.DB
	testQueries *Queries
	testStore   PostgresqlStore
)

// TestMain connects to the database named by the local config. When the
// database cannot be reached the tests in this package are skipped.
func TestMain(m *testing.M) {
	config := env.NewConfig(env.SymmetricKey, env.TokenDuration)
	if source := os.Getenv("DB_SOURCE"); source != "" {
		config.DbSource = source
	}

	conn, err := sql.Open(config.DbDriver, config.DbSource)
	if err != nil {
		log.Fatalln("cannot open db:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err == nil {
		testDB = conn
		testQueries = New(conn)
		testStore = NewStore(conn)
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("database not reachable")
	}
}
