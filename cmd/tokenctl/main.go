// Command tokenctl mints and revokes casting agency API tokens. It reads the
// same environment configuration as the server, so minted tokens verify
// against the running instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/castwire/castwire/internal/app"
	"github.com/castwire/castwire/internal/auth"
	"github.com/castwire/castwire/internal/shared"
)

func main() {
	permissions := flag.String("permissions", "", "comma-separated permissions to grant (default: all)")
	revoke := flag.String("revoke", "", "jti of a token to revoke instead of minting")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if *revoke != "" {
		if cfg.RedisAddr == "" {
			fmt.Fprintln(os.Stderr, "REDIS_ADDR must be set to revoke tokens")
			os.Exit(1)
		}
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		revoker := auth.NewRevoker(redisClient)
		if err := revoker.Revoke(context.Background(), *revoke, cfg.JWTTTL); err != nil {
			fmt.Fprintln(os.Stderr, "revoke:", err)
			os.Exit(1)
		}
		fmt.Println("revoked", *revoke)
		return
	}

	grants := shared.CastingScopes()
	if *permissions != "" {
		grants = nil
		for _, p := range strings.Split(*permissions, ",") {
			if p = strings.TrimSpace(p); p != "" {
				grants = append(grants, p)
			}
		}
	}

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	token, err := verifier.Sign(grants, cfg.JWTTTL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
