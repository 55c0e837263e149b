package configs

import (
	"time"

	"backend/entity"
)

// ชุดข้อมูล seed — source of truth ตอน boot ครั้งแรก
// แก้ข้อมูลในนี้แล้ว restart: record เดิมใน DB จะถูกเติม field ใหม่ให้ (ดู SeedUsers)

var seedNeeds = []entity.Need{
	{NeedID: "work", LabelJP: "仕事・勉強", LabelVN: "Làm việc/Học bài", Icon: "💻", Description: "Wi-Fi tốt, yên tĩnh, có ổ cắm"},
	{NeedID: "date", LabelJP: "デート", LabelVN: "Hẹn hò", Icon: "💑", Description: "Lãng mạn, view đẹp, không gian riêng tư"},
	{NeedID: "reading", LabelJP: "読書", LabelVN: "Đọc sách", Icon: "📚", Description: "Yên tĩnh, ánh sáng tốt, ghế ngồi thoải mái"},
	{NeedID: "photo", LabelJP: "写真撮影", LabelVN: "Sống ảo", Icon: "📸", Description: "Decor đẹp, góc check-in, ánh sáng tự nhiên"},
	{NeedID: "group", LabelJP: "グループ", LabelVN: "Tụ tập nhóm", Icon: "👥", Description: "Không gian rộng, nhiều chỗ ngồi"},
	{NeedID: "relax", LabelJP: "リラックス", LabelVN: "Thư giãn", Icon: "😌", Description: "Yên bình, không gian xanh, âm nhạc nhẹ nhàng"},
	{NeedID: "nature", LabelJP: "自然", LabelVN: "Thiên nhiên", Icon: "🌿", Description: "Sân vườn, cây xanh, không khí trong lành"},
}

var seedUsers = []entity.User{
	{
		Email: "hanako@example.com", Password: "hanako123",
		Name: "田中 花子", Username: "hanako",
		AvatarURL:        "https://api.dicebear.com/7.x/avataaars/svg?seed=hanako@example.com",
		Location:         "ベトナム・ハノイ",
		RegistrationDate: "2024年3月15日",
	},
	{
		Email: "minh@example.com", Password: "minh1234",
		Name: "Nguyễn Văn Minh", Username: "minhcafe",
		AvatarURL:        "https://api.dicebear.com/7.x/avataaars/svg?seed=minh@example.com",
		Location:         "ベトナム・ハノイ",
		RegistrationDate: "2024年5月2日",
	},
	{
		Email: "linh@example.com", Password: "linhlinh",
		Name: "Trần Thùy Linh", Username: "linhtt",
		AvatarURL:        "https://api.dicebear.com/7.x/avataaars/svg?seed=linh@example.com",
		Location:         "ベトナム・ホーチミン",
		RegistrationDate: "2024年7月21日",
	},
}

var seedStores = []entity.Store{
	{
		NameJP:        "コンカフェ・ハノイ",
		AddressJP:     "ハノイ市ホアンキエム区ハンバック通り12",
		DescriptionJP: "旧市街の真ん中にある落ち着いたカフェ。エッグコーヒーが名物。",
		Phone:         "+84 24 3828 1234",
		OpeningHours:  "07:00 - 22:00",
		Images: []string{
			"https://images.example.com/stores/1-1.jpg",
			"https://images.example.com/stores/1-2.jpg",
			"https://images.example.com/stores/1-3.jpg",
		},
		Services:  []string{"wifi", "power", "aircon"},
		SpaceType: entity.SpaceIndoor,
		Tags:      []string{"work", "reading", "relax"},
		Distance:  0.8,
		Lat:       21.0352, Lng: 105.8511,
	},
	{
		NameJP:        "ガーデンカフェ・タイ湖",
		AddressJP:     "ハノイ市タイホー区クアンアン通り45",
		DescriptionJP: "湖のほとりの広いガーデンカフェ。緑に囲まれてゆったり過ごせる。",
		Phone:         "+84 24 3719 5678",
		OpeningHours:  "08:00 - 23:00",
		Images: []string{
			"https://images.example.com/stores/2-1.jpg",
			"https://images.example.com/stores/2-2.jpg",
		},
		Services:  []string{"wifi", "parking", "pet"},
		SpaceType: entity.SpaceOutdoor,
		Tags:      []string{"nature", "relax", "group"},
		Distance:  4.2,
		Lat:       21.0622, Lng: 105.8230,
	},
	{
		NameJP:        "書斎カフェ・静",
		AddressJP:     "ハノイ市ドンダー区タイソン通り88",
		DescriptionJP: "本棚に囲まれた静かな空間。長居する学生や在宅ワーカーに人気。",
		Phone:         "+84 24 3562 2211",
		OpeningHours:  "08:00 - 22:00",
		Images: []string{
			"https://images.example.com/stores/3-1.jpg",
		},
		Services:  []string{"wifi", "power", "quiet"},
		SpaceType: entity.SpaceIndoor,
		Tags:      []string{"work", "reading"},
		Distance:  2.5,
		Lat:       21.0105, Lng: 105.8216,
	},
	{
		NameJP:        "ルーフトップ・モカ",
		AddressJP:     "ハノイ市バーディン区キムマー通り170",
		DescriptionJP: "夕景が綺麗なルーフトップ。デートや記念日にどうぞ。",
		Phone:         "+84 24 3766 9900",
		OpeningHours:  "09:00 - 23:30",
		Images: []string{
			"https://images.example.com/stores/4-1.jpg",
			"https://images.example.com/stores/4-2.jpg",
			"https://images.example.com/stores/4-3.jpg",
		},
		Services:  []string{"wifi", "parking"},
		SpaceType: entity.SpaceBoth,
		Tags:      []string{"date", "photo", "relax"},
		Distance:  3.1,
		Lat:       21.0306, Lng: 105.8125,
	},
	{
		NameJP:        "フォトカフェ・パステル",
		AddressJP:     "ハノイ市ハイバーチュン区フエ通り31",
		DescriptionJP: "パステル調のデコでどこを撮っても映える。週末は行列必至。",
		Phone:         "+84 24 3943 4455",
		OpeningHours:  "09:00 - 21:30",
		Images: []string{
			"https://images.example.com/stores/5-1.jpg",
			"https://images.example.com/stores/5-2.jpg",
		},
		Services:  []string{"wifi", "aircon"},
		SpaceType: entity.SpaceIndoor,
		Tags:      []string{"photo", "date", "group"},
		Distance:  1.9,
		Lat:       21.0169, Lng: 105.8521,
	},
	{
		NameJP:        "竹林カフェ",
		AddressJP:     "ハノイ市ロンビエン区ゴックトゥイ通り203",
		DescriptionJP: "竹林の中のオープンテラス。鳥の声を聞きながらコーヒーを。",
		Phone:         "+84 24 3873 7788",
		OpeningHours:  "07:30 - 22:00",
		Images: []string{
			"https://images.example.com/stores/6-1.jpg",
		},
		Services:  []string{"parking", "pet"},
		SpaceType: entity.SpaceOutdoor,
		Tags:      []string{"nature", "relax"},
		Distance:  6.7,
		Lat:       21.0486, Lng: 105.8865,
	},
	{
		NameJP:        "ミーティングポイント36",
		AddressJP:     "ハノイ市カウザイ区チャンタイトン通り36",
		DescriptionJP: "大テーブルと個室が揃う。勉強会やグループ利用の定番。",
		Phone:         "+84 24 3791 3600",
		OpeningHours:  "08:00 - 23:00",
		Images: []string{
			"https://images.example.com/stores/7-1.jpg",
			"https://images.example.com/stores/7-2.jpg",
		},
		Services:  []string{"wifi", "power", "parking", "aircon"},
		SpaceType: entity.SpaceBoth,
		Tags:      []string{"group", "work"},
		Distance:  5.4,
		Lat:       21.0362, Lng: 105.7905,
	},
	{
		NameJP:        "アンティーク珈琲店",
		AddressJP:     "ハノイ市ホアンキエム区リートゥーチョン通り9",
		DescriptionJP: "古い洋館を改装したレトロな喫茶店。サイフォンコーヒー専門。",
		Phone:         "+84 24 3825 0909",
		OpeningHours:  "10:00 - 21:00",
		Images: []string{
			"https://images.example.com/stores/8-1.jpg",
		},
		Services:  []string{"quiet", "aircon"},
		SpaceType: entity.SpaceIndoor,
		Tags:      []string{"reading", "date", "relax"},
		Distance:  1.2,
		Lat:       21.0245, Lng: 105.8490,
	},
}

// รีวิว seed — StoreIndex/UserIndex ชี้เข้า slice ด้านบน (id จริงรู้หลัง insert)
type seedReview struct {
	StoreIndex int
	UserIndex  int
	Rating     int
	Comment    string
	DaysAgo    int
}

var seedReviews = []seedReview{
	{0, 0, 5, "エッグコーヒーが絶品でした。店内も静かで作業がはかどります。", 30},
	{0, 1, 4, "Quán yên tĩnh, wifi mạnh. Chỗ ngồi hơi ít vào cuối tuần.", 21},
	{1, 2, 5, "Vườn rộng, nhiều cây xanh, rất hợp để thư giãn cuối tuần.", 14},
	{1, 0, 4, "湖の眺めが最高。虫よけスプレーは持って行った方がいいかも。", 10},
	{2, 1, 5, "Ổ cắm ở mọi bàn, nhạc nhẹ, ngồi học cả buổi không chán.", 25},
	{2, 2, 4, "本が多くて落ち着く。コーヒーは普通。", 18},
	{3, 0, 5, "夕日の時間帯が本当に綺麗。デートにおすすめ。", 7},
	{3, 1, 4, "View đẹp nhưng giá hơi cao.", 5},
	{4, 2, 4, "Góc nào chụp cũng đẹp, đồ uống ổn.", 12},
	{5, 0, 5, "竹の音と鳥の声。都会とは思えない静けさ。", 9},
	{6, 1, 4, "Phòng họp nhóm rộng, đặt chỗ trước dễ dàng.", 16},
	{7, 2, 5, "サイフォンの香りがたまらない。レトロな内装も素敵。", 3},
}

type seedFavorite struct {
	UserIndex  int
	StoreIndex int
}

var seedFavorites = []seedFavorite{
	{0, 0},
	{0, 3},
	{1, 2},
	{2, 1},
	{2, 4},
}

func seedReviewDate(daysAgo int) time.Time {
	return time.Now().AddDate(0, 0, -daysAgo)
}
