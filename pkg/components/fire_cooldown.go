package components

import "time"

// FireCooldownComponent 射击冷却计时器
// 使用墙钟时间判断，两次射击的间隔不能小于 Interval
type FireCooldownComponent struct {
	Interval time.Duration // 最小射击间隔
	LastFire time.Time     // 上一次成功射击的时间，零值表示从未射击
}

// Ready 判断在 now 时刻是否可以再次射击
func (c *FireCooldownComponent) Ready(now time.Time) bool {
	if c.LastFire.IsZero() {
		return true
	}
	return now.Sub(c.LastFire) >= c.Interval
}

// Trigger 记录一次成功射击
func (c *FireCooldownComponent) Trigger(now time.Time) {
	c.LastFire = now
}
