// scripts/dev-token/main.go
//
// Mints a bearer token for local testing, signed with the configured jwt.secret_key.
//
// Usage:
//   go run scripts/dev-token/main.go <user-id> [role] [ttl]
//   go run scripts/dev-token/main.go caregiver-1 caregiver 24h

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"familybridge/config"
	"familybridge/internal/model"
	"familybridge/pkg/scope"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: dev-token <user-id> [role] [ttl]")
	}

	sc := model.Scope{UserID: os.Args[1]}
	if len(os.Args) > 2 {
		sc.Role = os.Args[2]
	}

	ttl := 24 * time.Hour
	if len(os.Args) > 3 {
		d, err := time.ParseDuration(os.Args[3])
		if err != nil {
			log.Fatalf("Invalid ttl %q: %v", os.Args[3], err)
		}
		ttl = d
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer).CreateToken(sc, ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
