// Command devtoken prints a signed access token for local requests
// against the server, using the jwt_secret from app.yaml.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rest-core/internal/auth"
	"rest-core/internal/config"
)

func main() {
	user := flag.String("user", "", "user id (default: random)")
	roles := flag.String("roles", "", "comma separated roles")
	ttl := flag.Duration("ttl", auth.AccessTokenTTL, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		if userID, err = uuid.Parse(*user); err != nil {
			logrus.Fatalf("Invalid user id: %v", err)
		}
	}

	var roleList []string
	if *roles != "" {
		roleList = strings.Split(*roles, ",")
	}

	token, err := auth.GenerateAccessToken(userID, roleList, cfg.JWTSecret, *ttl)
	if err != nil {
		logrus.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
