//go:build hallassert

package strobe

import "fmt"

func assertInSync(tracked, requested int) {
	panic(fmt.Sprintf("strobe: select(%d) while walking bit is at %d", requested, tracked))
}
