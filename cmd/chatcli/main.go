package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Terminal client for the beauty advisor API. Useful for poking the service
// without a browser.

var apiBaseURL = "http://localhost:3000/api"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	Id       string `json:"id"`
	Greeting string `json:"greeting"`
}

type sendData struct {
	Reply *struct {
		Chat string `json:"chat"`
	} `json:"reply"`
	Skipped bool `json:"skipped"`
}

func main() {
	if url := os.Getenv("CHATCLI_API_URL"); url != "" {
		apiBaseURL = url
	}

	bot := color.New(color.FgMagenta, color.Bold)
	errc := color.New(color.FgRed)
	dim := color.New(color.Faint)

	sess, err := createSession()
	if err != nil {
		errc.Printf("Failed to create session: %v\n", err)
		os.Exit(1)
	}

	dim.Printf("session %s — type a message, /quit to exit\n\n", sess.Id)
	bot.Printf("glow> ")
	fmt.Println(sess.Greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.New(color.FgCyan).Printf("you>  ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			break
		}

		reply, errMsg := sendChat(sess.Id, line)
		if errMsg != "" {
			errc.Printf("glow> %s\n", errMsg)
			continue
		}
		if reply == "" {
			dim.Println("(ignored)")
			continue
		}
		bot.Printf("glow> ")
		fmt.Println(reply)
	}
}

func createSession() (*sessionData, error) {
	resp, err := http.Post(apiBaseURL+"/chat/v1/session", "application/json", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("server: %s", env.Message)
	}

	var data sessionData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func sendChat(sessionID, chat string) (reply, errMsg string) {
	payload, _ := json.Marshal(map[string]string{
		"chat_session_id": sessionID,
		"chat":            chat,
	})

	client := &http.Client{Timeout: 130 * time.Second}
	resp, err := client.Post(apiBaseURL+"/chat/v1/send", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", err.Error()
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Sprintf("bad response: %s", string(body))
	}
	if !env.Success {
		return "", env.Message
	}

	var data sendData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", err.Error()
	}
	if data.Skipped || data.Reply == nil {
		return "", ""
	}
	return data.Reply.Chat, ""
}
