package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"smartdesk/model"
)

// 命令行客户端：逐行读入消息，打在 /chat 上并输出回复和活动日志

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "服务地址")
	flag.Parse()

	httpCli := &http.Client{Timeout: 60 * time.Second}
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Service Desk Autopilot CLI")
	fmt.Print("Enter your user id (e.g. jv-123): ")
	userID := "demo-user"
	if scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			userID = s
		}
	}

	fmt.Println("Type 'quit' to exit.")
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		if msg == "quit" || msg == "exit" {
			break
		}

		resp, err := sendMessage(httpCli, *baseURL, userID, msg)
		if err != nil {
			fmt.Printf("[error] %v\n", err)
			continue
		}

		fmt.Printf("\n[assistant] %s\n\n", resp.Reply)
		fmt.Println("Activity log:")
		for _, entry := range resp.ActivityLog {
			result, _ := json.Marshal(entry.Result)
			fmt.Printf(" - %s: %s\n", entry.Step, result)
		}
		fmt.Println("\n" + strings.Repeat("-", 40) + "\n")
	}
}

func sendMessage(httpCli *http.Client, baseURL, userID, message string) (*model.ChatResponse, error) {
	bs, _ := json.Marshal(model.ChatRequest{UserID: userID, Message: message})

	httpResp, err := httpCli.Post(baseURL+"/chat", "application/json", bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(httpResp.Body).Decode(&errBody)
		return nil, fmt.Errorf("server returned status %d: %s", httpResp.StatusCode, errBody.Error)
	}

	var resp model.ChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
