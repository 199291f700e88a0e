package services

import "fmt"

func reasonEnergy(value int) string {
	return fmt.Sprintf("体力%d", value)
}

func reasonNausea(value int) string {
	return fmt.Sprintf("恶心%d", value)
}

func reasonFever(tempC float64) string {
	return fmt.Sprintf("发热%.1f℃", tempC)
}

func reasonStool(count int) string {
	return fmt.Sprintf("排便%d次", count)
}
