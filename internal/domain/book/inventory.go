package book

// ValidInventory 校验库存数量
// 按顺序检查：owned >= 1、available >= 0、owned >= available
func ValidInventory(owned, available int) bool {
	if owned < 1 {
		return false
	}
	if available < 0 {
		return false
	}
	if owned < available {
		return false
	}
	return true
}
