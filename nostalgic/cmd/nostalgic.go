// Admin command-line interface: schema migration and user provisioning.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"nostalgic/nostalgic/config"
	"nostalgic/nostalgic/container"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/sources/psql"
	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

func usage() {
	fmt.Println("nostalgic admin usage:")
	fmt.Println("  nostalgic migrate             # create or update the schema")
	fmt.Println("  nostalgic useradd <username>  # create a user, password read from stdin")
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	c, err := container.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case args[0] == "migrate":
		err = migrate(c)
	case args[0] == "useradd" && len(args) == 2:
		err = useradd(c, args[1], os.Stdin)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		logging.ErrorLogger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		logging.Sync()
		os.Exit(1)
	}
}

// migrate relies on NewDatabase running AutoMigrate on connect.
func migrate(c *dig.Container) error {
	return c.Invoke(func(db *psql.Database) {
		defer db.Close()
		logging.AppLogger.Info("schema migrated")
		fmt.Println("schema is up to date")
	})
}

func useradd(c *dig.Container, username string, in io.Reader) error {
	fmt.Print("password: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return errors.New("no password given")
	}
	password := strings.TrimRight(scanner.Text(), "\r")
	fmt.Println()

	var regErr error
	err := c.Invoke(func(db *psql.Database, auth *controllers.AuthController) {
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		regErr = auth.Register(ctx, types.CreateUserRequest{
			Username:  username,
			Password1: password,
			Password2: password,
		})
	})
	if err != nil {
		return err
	}
	if regErr != nil {
		return regErr
	}
	fmt.Printf("user %q created\n", username)
	return nil
}
