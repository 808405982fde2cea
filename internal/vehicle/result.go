package vehicle

import "fmt"

// Result is the terminal value of one command execution. Errors are values,
// never Go errors: nothing in the command layer propagates.
type Result struct {
	OK      bool
	Message string
}

func success(format string, a ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, a...)}
}

func failure(format string, a ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, a...)}
}

// Guidance is the reply for unclassifiable input. It is a Success: not
// understanding the user is not an execution error.
const Guidance = "抱歉，我没有听懂。您可以试试说：打开空调、播放音乐或者查询天气。"
