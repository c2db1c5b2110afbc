package response

import (
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalUsers    int64           `json:"totalUsers"`
	TotalProducts int64           `json:"totalProducts"`
}

type ChartPoint struct {
	Name     string `json:"name"`
	Sales    int    `json:"sales"`
	Visitors int    `json:"visitors"`
}

type DashboardResponse struct {
	Stats        DashboardStats  `json:"stats"`
	RecentOrders []OrderResponse `json:"recentOrders"`
	ChartData    []ChartPoint    `json:"chartData"`
}
