package nutrition

// Food is an entry of the built-in Bahraini food catalog with nutrition per
// serving and glycemic index.
type Food struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameAr   string `json:"nameAr"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Fiber    int    `json:"fiber"`
	GI       int    `json:"gi"`
	Serving  string `json:"serving"`
	Category string `json:"category"`
}

var Catalog = []Food{
	{ID: "BF001", Name: "Machboos (Chicken)", NameAr: "مجبوس دجاج", Calories: 450, Carbs: 55, Protein: 28, Fat: 15, Fiber: 3, GI: 65, Serving: "1 plate (300g)", Category: "main"},
	{ID: "BF002", Name: "Machboos (Lamb)", NameAr: "مجبوس لحم", Calories: 520, Carbs: 55, Protein: 32, Fat: 20, Fiber: 3, GI: 65, Serving: "1 plate (300g)", Category: "main"},
	{ID: "BF003", Name: "Machboos (Fish)", NameAr: "مجبوس سمك", Calories: 380, Carbs: 50, Protein: 30, Fat: 8, Fiber: 2, GI: 60, Serving: "1 plate (300g)", Category: "main"},
	{ID: "BF004", Name: "Harees", NameAr: "هريس", Calories: 380, Carbs: 45, Protein: 22, Fat: 12, Fiber: 4, GI: 60, Serving: "1 bowl (250g)", Category: "main"},
	{ID: "BF005", Name: "Balaleet", NameAr: "بلاليط", Calories: 320, Carbs: 48, Protein: 10, Fat: 10, Fiber: 1, GI: 70, Serving: "1 serving (200g)", Category: "breakfast"},
	{ID: "BF006", Name: "Muhammar (Sweet Rice)", NameAr: "محمر", Calories: 280, Carbs: 50, Protein: 5, Fat: 6, Fiber: 1, GI: 72, Serving: "1 cup (180g)", Category: "main"},
	{ID: "BF007", Name: "Thareed", NameAr: "ثريد", Calories: 420, Carbs: 52, Protein: 25, Fat: 12, Fiber: 3, GI: 65, Serving: "1 bowl (300g)", Category: "main"},
	{ID: "BF008", Name: "Samboosa (Meat)", NameAr: "سمبوسة لحم", Calories: 180, Carbs: 15, Protein: 8, Fat: 10, Fiber: 1, GI: 55, Serving: "2 pieces", Category: "snack"},
	{ID: "BF009", Name: "Samboosa (Vegetable)", NameAr: "سمبوسة خضار", Calories: 150, Carbs: 18, Protein: 4, Fat: 7, Fiber: 2, GI: 50, Serving: "2 pieces", Category: "snack"},
	{ID: "BF010", Name: "Luqaimat", NameAr: "لقيمات", Calories: 150, Carbs: 22, Protein: 2, Fat: 6, Fiber: 0, GI: 75, Serving: "5 pieces", Category: "dessert"},
	{ID: "BF011", Name: "Khanfaroosh", NameAr: "خنفروش", Calories: 120, Carbs: 18, Protein: 2, Fat: 5, Fiber: 0, GI: 70, Serving: "2 pieces", Category: "dessert"},
	{ID: "BF012", Name: "Dates (Khudri)", NameAr: "تمر خضري", Calories: 66, Carbs: 18, Protein: 0, Fat: 0, Fiber: 2, GI: 42, Serving: "2 dates (20g)", Category: "snack"},
	{ID: "BF013", Name: "Dates (Medjool)", NameAr: "تمر مجدول", Calories: 133, Carbs: 36, Protein: 1, Fat: 0, Fiber: 3, GI: 45, Serving: "2 dates (40g)", Category: "snack"},
	{ID: "BF014", Name: "Gahwa (Arabic Coffee)", NameAr: "قهوة عربية", Calories: 5, Carbs: 1, Protein: 0, Fat: 0, Fiber: 0, GI: 0, Serving: "1 cup (60ml)", Category: "beverage"},
	{ID: "BF015", Name: "Karak Chai", NameAr: "شاي كرك", Calories: 120, Carbs: 18, Protein: 3, Fat: 4, Fiber: 0, GI: 65, Serving: "1 cup (150ml)", Category: "beverage"},
	{ID: "BF016", Name: "Khubz (Arabic Bread)", NameAr: "خبز عربي", Calories: 80, Carbs: 16, Protein: 3, Fat: 1, Fiber: 1, GI: 70, Serving: "1 piece", Category: "bread"},
	{ID: "BF017", Name: "Hummus", NameAr: "حمص", Calories: 166, Carbs: 14, Protein: 8, Fat: 10, Fiber: 6, GI: 6, Serving: "100g", Category: "side"},
	{ID: "BF018", Name: "Falafel", NameAr: "فلافل", Calories: 333, Carbs: 32, Protein: 13, Fat: 18, Fiber: 5, GI: 40, Serving: "6 pieces", Category: "side"},
	{ID: "BF019", Name: "Tabbouleh", NameAr: "تبولة", Calories: 90, Carbs: 10, Protein: 2, Fat: 5, Fiber: 3, GI: 15, Serving: "1 cup (150g)", Category: "side"},
	{ID: "BF020", Name: "Fattoush", NameAr: "فتوش", Calories: 120, Carbs: 12, Protein: 3, Fat: 7, Fiber: 3, GI: 20, Serving: "1 bowl (200g)", Category: "side"},
	{ID: "BF021", Name: "White Rice", NameAr: "أرز أبيض", Calories: 206, Carbs: 45, Protein: 4, Fat: 0, Fiber: 1, GI: 73, Serving: "1 cup (158g)", Category: "main"},
	{ID: "BF022", Name: "Basmati Rice", NameAr: "أرز بسمتي", Calories: 191, Carbs: 43, Protein: 4, Fat: 1, Fiber: 1, GI: 58, Serving: "1 cup (158g)", Category: "main"},
	{ID: "BF023", Name: "Chicken Shawarma", NameAr: "شاورما دجاج", Calories: 350, Carbs: 20, Protein: 28, Fat: 18, Fiber: 2, GI: 50, Serving: "1 wrap", Category: "main"},
	{ID: "BF024", Name: "Grilled Hammour", NameAr: "هامور مشوي", Calories: 180, Carbs: 0, Protein: 35, Fat: 4, Fiber: 0, GI: 0, Serving: "150g fillet", Category: "main"},
	{ID: "BF025", Name: "Laban (Buttermilk)", NameAr: "لبن", Calories: 62, Carbs: 5, Protein: 3, Fat: 4, Fiber: 0, GI: 32, Serving: "1 cup (240ml)", Category: "beverage"},
}
