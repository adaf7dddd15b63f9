package errCode

type Code int

const (
	OK            Code = iota
	INVALID_VALUE      // 参数不合法
	EMPTY_VALUE        // 输入为空
	DOMAIN_ERROR       // 数学定义域错误(除零/负数开方)
	FIT_ERROR          // 回归窗口奇异或欠定
	ZERO_SLOPE         // 水平拟合, 无法外推
	HTTP_ERROR         // 外部请求失败
	PARSE_ERROR        // 响应/文件解析失败
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case DOMAIN_ERROR:
		return "DOMAIN_ERROR"
	case FIT_ERROR:
		return "FIT_ERROR"
	case ZERO_SLOPE:
		return "ZERO_SLOPE"
	case HTTP_ERROR:
		return "HTTP_ERROR"
	case PARSE_ERROR:
		return "PARSE_ERROR"
	default:
		return "UNKNOWN"
	}
}
