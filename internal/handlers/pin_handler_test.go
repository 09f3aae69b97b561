package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func setupPINRouter(handler *PINHandler) *gin.Engine {
	r := gin.New()
	r.GET("/pin", handler.GetPINStatus)
	r.POST("/pin/verify", handler.VerifyPIN)
	return r
}

func TestPINHandler_VerifyPIN(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("2468"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash pin: %v", err)
	}
	r := setupPINRouter(NewPINHandler(string(hash)))

	t.Run("accepts correct pin", func(t *testing.T) {
		rec := doRequest(r, "POST", "/pin/verify", `{"pin":"2468"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["valid"] != true {
			t.Error("expected valid pin")
		}
	})

	t.Run("returns 401 on wrong pin", func(t *testing.T) {
		rec := doRequest(r, "POST", "/pin/verify", `{"pin":"1357"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PIN")
	})

	t.Run("returns 400 on malformed pin", func(t *testing.T) {
		rec := doRequest(r, "POST", "/pin/verify", `{"pin":"ab"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("status reports gate", func(t *testing.T) {
		rec := doRequest(r, "GET", "/pin", "")
		if parseJSON(t, rec)["required"] != true {
			t.Error("expected pin to be required")
		}
	})
}

func TestPINHandler_Disabled(t *testing.T) {
	r := setupPINRouter(NewPINHandler(""))

	rec := doRequest(r, "POST", "/pin/verify", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["valid"] != true || result["required"] != false {
		t.Errorf("expected open gate, got %v", result)
	}
}
