// Package catalog provides the product catalogue. The catalogue ships
// embedded in the binary; when a Mongo URL is configured the products
// collection is read once at startup instead.
package catalog

import "moso_shop/internal/models"

// Seed returns the embedded catalogue. Callers receive a fresh slice on
// every call; the records themselves are treated as immutable.
func Seed() []models.Product {
	products := []models.Product{
		{
			ID:          "1",
			Name:        "Chè dưỡng nhan tự nóng - Vị truyền thống",
			Description: "Hũ chè dưỡng nhan 12 vị với lõi tự làm nóng, dùng được mọi lúc mọi nơi không cần bếp.",
			Price:       "189.000đ",
			ImageURL:    "/static/img/che-truyen-thong.jpg",
			Category:    "che-duong-nhan",
			Ingredients: []string{"Tuyết yến", "Nhựa đào", "Táo đỏ", "Kỷ tử", "Long nhãn", "Hạt chia"},
			Benefits:    []string{"Đẹp da", "Thanh nhiệt", "Bổ sung collagen thực vật"},
			Usage:       []string{"Kéo dây kích hoạt lõi nóng", "Chờ 8 phút", "Khuấy đều và thưởng thức"},
		},
		{
			ID:          "2",
			Name:        "Chè dưỡng nhan tự nóng - Hạt sen long nhãn",
			Description: "Phiên bản hạt sen long nhãn thanh mát, ngọt dịu từ đường phèn.",
			Price:       "155.000đ",
			ImageURL:    "/static/img/che-hat-sen.jpg",
			Category:    "che-duong-nhan",
			Ingredients: []string{"Hạt sen", "Long nhãn", "Táo đỏ", "Đường phèn"},
			Benefits:    []string{"An thần", "Ngủ ngon", "Đẹp da"},
			Usage:       []string{"Kéo dây kích hoạt lõi nóng", "Chờ 8 phút", "Dùng nóng ngon hơn"},
		},
		{
			ID:          "3",
			Name:        "Chè tuyết yến nhựa đào tự nóng",
			Description: "Tuyết yến và nhựa đào nguyên chất, kết cấu giòn sần sật.",
			Price:       "215.000đ",
			ImageURL:    "/static/img/che-tuyet-yen.jpg",
			Category:    "che-duong-nhan",
			Ingredients: []string{"Tuyết yến", "Nhựa đào", "Hạt é", "Kỷ tử"},
			Benefits:    []string{"Bổ sung collagen thực vật", "Mát gan"},
		},
		{
			ID:          "4",
			Name:        "Combo 3 hũ chè dưỡng nhan tự chọn",
			Description: "Combo tiết kiệm gồm 3 hũ tự chọn vị, tặng kèm túi giữ nhiệt.",
			Price:       "499.000đ",
			ImageURL:    "/static/img/combo-3.jpg",
			Category:    "combo",
		},
		{
			ID:          "5",
			Name:        "Set quà tặng MoSo Deluxe",
			Description: "Hộp quà 6 hũ kèm thiệp viết tay, phù hợp biếu tặng dịp lễ.",
			Price:       "899.000đ",
			ImageURL:    "/static/img/set-deluxe.jpg",
			Category:    "qua-tang",
		},
		{
			ID:          "6",
			Name:        "Trà hoa đậu biếc mật ong",
			Description: "Trà túi lọc hoa đậu biếc sấy lạnh, uống kèm chè dưỡng nhan.",
			Price:       "89.000đ",
			ImageURL:    "/static/img/tra-dau-biec.jpg",
			Category:    "tra",
			Benefits:    []string{"Chống oxy hoá", "Thanh lọc cơ thể"},
		},
	}
	return products
}
