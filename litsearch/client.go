package litsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spectro/bandgap"
	"spectro/config"
	"spectro/infra/errorx"
	"spectro/infra/errorx/errCode"
	"spectro/infra/staticLog"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

const (
	CROSSREF_API    = "https://api.crossref.org/works"
	DEFAULT_ROWS    = 5
	DEFAULT_TIMEOUT = 10 * time.Second
)

// Paper 单条文献检索结果
type Paper struct {
	Title   string
	DOI     string
	DOILink string
	BandGap *float64 // 摘要/全文中提取到的带隙值, 未提取到为nil
}

// Client CrossRef 文献检索客户端
type Client struct {
	HTTP *http.Client
	Rows int
}

func NewClient() *Client {
	return &Client{
		HTTP: &http.Client{Timeout: config.GetTimeout(DEFAULT_TIMEOUT)},
		Rows: config.GetLiteratureRows(DEFAULT_ROWS),
	}
}

// Search 按材料名检索文献并尝试提取带隙, 摘要无果时回退全文抓取
func (c *Client) Search(ctx context.Context, material string) ([]Paper, error) {
	q := strings.TrimSpace(material)
	if q == "" {
		return nil, errorx.New(errCode.EMPTY_VALUE, "检索词为空")
	}

	u := fmt.Sprintf("%s?query=%s&rows=%d", CROSSREF_API, url.QueryEscape(q), c.Rows)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("构造请求失败: %v", err))
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("CrossRef 请求失败: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("CrossRef 返回 %d", resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("读取响应失败: %v", err))
	}

	papers := ParseWorks(body)
	for i := range papers {
		if papers[i].BandGap != nil || papers[i].DOILink == "" {
			continue
		}
		text, err := c.FetchFullText(ctx, papers[i].DOILink)
		if err != nil {
			staticLog.Log.Infof("全文抓取失败 %s: %v", papers[i].DOI, err)
			continue
		}
		if v, ok := ExtractBandGap(text); ok {
			papers[i].BandGap = &v
		}
	}
	return papers, nil
}

// ParseWorks 解析CrossRef works响应, 并对摘要做带隙提取
func ParseWorks(body []byte) []Paper {
	var papers []Paper
	gjson.GetBytes(body, "message.items").ForEach(func(_, item gjson.Result) bool {
		p := Paper{
			Title: item.Get("title.0").String(),
			DOI:   item.Get("DOI").String(),
		}
		if p.Title == "" {
			p.Title = "No title available"
		}
		if p.DOI != "" {
			p.DOILink = "https://doi.org/" + p.DOI
		}
		if abs := item.Get("abstract").String(); abs != "" {
			if v, ok := ExtractBandGap(abs); ok {
				p.BandGap = &v
			}
		}
		papers = append(papers, p)
		return true
	})
	return papers
}

// FetchFullText 抓取网页并抽取纯文本, script/style子树跳过
func (c *Client) FetchFullText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("构造请求失败: %v", err))
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("全文请求失败: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errorx.New(errCode.HTTP_ERROR, fmt.Sprintf("全文请求返回 %d", resp.StatusCode))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", errorx.New(errCode.PARSE_ERROR, fmt.Sprintf("HTML解析失败: %v", err))
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return b.String(), nil
}

// CompareBandGap 用户估计值与文献值在配置容差内是否一致
func CompareBandGap(userGap, refGap float64) bool {
	return bandgap.MatchesReference(userGap, refGap, config.GetTolerance(bandgap.DEFAULT_TOLERANCE_EV))
}
