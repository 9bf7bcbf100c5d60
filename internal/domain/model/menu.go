package model

// Item メニュー内の一品を表すモデル
type Item struct {
	ID         string   `json:"itemId" firestore:"item_id"`
	Name       string   `json:"name" firestore:"name"`
	Attributes []string `json:"attributes" firestore:"attributes"` // 味の特徴（spicy, sweetなど）
	Price      int      `json:"price" firestore:"price"`
}

// Menu 店舗ごとのメニュードキュメント（Firestoreの menus コレクション）
type Menu struct {
	RestaurantID string `json:"restaurantId" firestore:"restaurant_id"`
	Items        []Item `json:"items" firestore:"items"`
}

// ContainsItem 指定されたitemIdのいずれかをメニューに含むかチェック
func (m *Menu) ContainsItem(itemIDs []string) bool {
	for _, item := range m.Items {
		for _, id := range itemIDs {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}
