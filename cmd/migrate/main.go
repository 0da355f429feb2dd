package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"stardrop/internal/datastore"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandSeedSettings(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableUser(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableClaim(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableReferral(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableSetting(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

// insert default settings to db
func commandSeedSettings() *cli.Command {
	return &cli.Command{
		Name:        "seed-settings",
		Description: "Insert default settings to db",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "approval-wallet",
				Usage: "initial approval wallet address",
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			wallet := c.String("approval-wallet")
			if wallet != "" {
				if err := datastore.InsertSettingIfAbsent(ctx, db, "APPROVAL_WALLET", wallet); err != nil {
					log.Println(err)
				}
			}

			if err := datastore.InsertSettingIfAbsent(ctx, db, "STATS_SNAPSHOT", "{}"); err != nil {
				log.Println(err)
			}

			fmt.Println("Seed success")

			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	return bun.NewDB(sqldb, pgdialect.New()), nil
}
