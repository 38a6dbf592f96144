package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/services"
	"go.uber.org/zap"
)

func main() {
	var envFilename, subject, email, roles string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.StringVar(&subject, "sub", "", "staff user id (required)")
	flag.StringVar(&email, "email", "", "staff email")
	flag.StringVar(&roles, "roles", "", "comma separated roles, defaults to AUTH_ROLES")
	flag.Parse()

	if err := logger.InitLogger(&logger.LogConfig{Level: "warn", ServiceName: "propertyhub-stafftoken"}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	if subject == "" {
		fmt.Fprintln(os.Stderr, "usage: stafftoken -sub USER_ID [-email EMAIL] [-roles admin,editor] [-f ENV_FILE_PATH]")
		os.Exit(2)
	}

	cfg, err := config.LoadFile(envFilename)
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.AuthMode != config.AuthModeJWT {
		log.Fatal("Staff tokens are only used with AUTH_MODE=jwt", zap.String("authMode", cfg.AuthMode))
	}

	tokenRoles := cfg.StaffRoles
	if roles != "" {
		tokenRoles = nil
		for _, r := range strings.Split(roles, ",") {
			if r = strings.TrimSpace(r); r != "" {
				tokenRoles = append(tokenRoles, r)
			}
		}
	}

	issuer := services.NewJWTValidator(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	token, err := issuer.IssueToken(subject, email, tokenRoles)
	if err != nil {
		log.Fatal("Failed to issue token", zap.Error(err))
	}
	fmt.Println(token)
}
