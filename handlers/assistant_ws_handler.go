package handlers

import (
	"errors"
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/propsetu/realestate_guru/configs"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/llm"
	"github.com/propsetu/realestate_guru/models"
	"github.com/propsetu/realestate_guru/services"
	"github.com/propsetu/realestate_guru/websocket"
)

type wsQuestion struct {
	Message string `json:"message"`
}

type wsReply struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ServeAssistantWs runs a live assistant session over a websocket. The first
// frame must be an auth message carrying a JWT; every frame after that is a
// question, answered in order on the same connection. Turns are persisted to
// the same transcript the REST endpoint writes.
func ServeAssistantWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		log.Printf("WebSocket auth failed: invalid or missing auth message, error: %v", err)
		_ = c.WriteJSON(map[string]string{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		log.Printf("WebSocket auth failed: invalid token, error: %v", err)
		_ = c.WriteJSON(map[string]string{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		log.Printf("WebSocket auth failed: invalid user_id: %v", claims["user_id"])
		_ = c.WriteJSON(map[string]string{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var msg wsQuestion
		if err := c.ReadJSON(&msg); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %s: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}
		if msg.Message == "" {
			_ = c.WriteJSON(map[string]string{"error": "Message is required"})
			continue
		}

		userTurn := models.ChatMessage{UserID: userID, Role: "user", Content: msg.Message}
		if err := database.DB.Create(&userTurn).Error; err != nil {
			log.Printf("Failed to save message for client %s: %v", userID, err)
			_ = c.WriteJSON(map[string]string{"error": "Failed to save message"})
			continue
		}

		reply := llm.DefaultClient.GetResponse(msg.Message)
		assistantTurn := models.ChatMessage{UserID: userID, Role: "assistant", Content: reply}
		database.DB.Create(&assistantTurn)

		services.AwardChatUsage(userID)
		go services.TouchActivity(userID)

		if err := c.WriteJSON(wsReply{Role: "assistant", Content: reply}); err != nil {
			log.Printf("Error sending reply to client %s: %v", userID, err)
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
