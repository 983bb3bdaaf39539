package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	socialRecipeFactory "github.com/gmaschi/go-recipes-social/internal/factories/social-recipe-factory"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/config/env"
	_ "github.com/lib/pq"
)

func main() {
	config, err := env.LoadConfig(".")
	if err != nil {
		log.Fatalln("cannot load env variables:", err)
	}

	conn, err := sql.Open(config.DbDriver, config.DbSource)
	if err != nil {
		log.Fatalln("could not connect to database:", err)
	}
	defer conn.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		log.Fatalln("could not reach database:", err)
	}

	store := db.NewStore(conn)
	server, err := socialRecipeFactory.New(config, store)
	if err != nil {
		log.Fatalln("could not start server:", err)
	}
	defer server.Log.Sync()

	if err = server.Start(config.ServerAddress); err != nil {
		server.Log.Fatal("cannot start server", "error", err)
	}
}
