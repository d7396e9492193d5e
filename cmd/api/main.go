package main

import (
	"fmt"
	"net/http"

	"github.com/flexwork-hq/payroll-engine-go/internal/config"
	appHTTP "github.com/flexwork-hq/payroll-engine-go/internal/handler/http"
	"github.com/flexwork-hq/payroll-engine-go/internal/pkg/jwt"
	worktimeService "github.com/flexwork-hq/payroll-engine-go/internal/service/worktime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	worktimeSvc := worktimeService.NewWorktimeService(cfg.Rules)
	worktimeHandler := appHTTP.NewWorktimeHandler(worktimeSvc)

	router := appHTTP.NewRouter(JWTService, worktimeHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
