package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smartdesk/model"
)

// Service 用户目录查询接口
// 返回 (nil, nil) 表示目录正常应答但查无此人；error 表示目录本身不可用
type Service interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

// HTTPClient 对接真实目录服务：GET {base}/users/{id}
type HTTPClient struct {
	baseURL string
	httpCli *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpCli: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/users/"+userID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpCli.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory service returned status %d", resp.StatusCode)
	}

	var profile model.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Static 未配置目录服务时使用的假档案，便于本地联调
type Static struct{}

func (Static) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return &model.UserProfile{
		ID:         userID,
		Name:       "Test User",
		Department: "Engineering",
		Location:   "US",
		Role:       "Employee",
	}, nil
}
