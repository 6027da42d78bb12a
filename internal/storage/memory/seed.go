package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/tattoo-studio/internal/lib/month"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

type seedMessage struct {
	ago        time.Duration
	content    string
	isFromUser bool
}

type seedConversation struct {
	salonIdx    int
	lastAgo     time.Duration
	unreadCount int
	messages    []seedMessage
}

// Seed заполняет хранилище демонстрационными данными: пользователь testuser,
// три тарифных плана, две подписки, три салона, переписки с ними и четыре
// изображения в галерее.
// Пароль пользователя передаётся уже готовым (например, bcrypt-хэш).
func (s *Storage) Seed(ctx context.Context, userPassword string) error {
	const op = "storage.memory.Seed"

	user, err := s.CreateUser(ctx, "testuser", userPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	plans := []models.SubscriptionPlan{
		{
			Name:     "Базовий",
			Price:    199,
			Interval: "month",
			Features: []string{
				"20 генерацій тату на місяць",
				"Базові стилі та техніки",
				"Експорт у PNG/JPG",
				"Преміум стилі та фільтри",
			},
			IsPopular: true,
		},
		{
			Name:     "Професійний",
			Price:    349,
			Interval: "month",
			Features: []string{
				"Необмежені генерації",
				"Всі стилі та техніки",
				"Експорт у всіх форматах",
				"Преміум підтримка",
			},
			IsBest: true,
		},
		{
			Name:     "Для салонів",
			Price:    899,
			Interval: "month",
			Features: []string{
				"Необмежені генерації",
				"Брендування та власні стилі",
				"5 акаунтів для майстрів",
				"Пріоритетна підтримка",
			},
		},
	}
	created := make([]models.SubscriptionPlan, 0, len(plans))
	for _, p := range plans {
		plan, err := s.CreatePlan(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		created = append(created, plan)
	}

	now := s.now()
	subs := []models.UserSubscription{
		{UserID: user.ID, PlanID: created[1].ID, StartDate: now, EndDate: month.Add(now, 1), IsActive: true},
		{UserID: user.ID, PlanID: created[0].ID, StartDate: month.Add(now, -1), EndDate: now, IsActive: false},
	}
	for _, sub := range subs {
		if _, err := s.CreateUserSubscription(ctx, sub); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	salons := []models.TattooSalon{
		{
			Name:        "InkMasters Tattoo Studio",
			Address:     "вул. Хрещатик, 12",
			City:        "Київ",
			Rating:      "4.8",
			Image:       "https://images.unsplash.com/photo-1598443861840-4bef05b6ff5d?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			Description: "Студія з 15-річним досвідом створення унікальних тату. Працюємо з усіма стилями.",
			Styles:      []string{"Традиційний", "Реалізм", "Мінімалізм"},
		},
		{
			Name:        "Black Lotus Tattoo",
			Address:     "вул. Франка, 22",
			City:        "Львів",
			Rating:      "4.9",
			Image:       "https://images.unsplash.com/photo-1559671216-2c0df61072a5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			Description: "Авторська студія з індивідуальним підходом. Спеціалізуємося на японському стилі.",
			Styles:      []string{"Неотрадішнл", "Японський", "Геометрія"},
		},
		{
			Name:        "Art Fusion Tattoo",
			Address:     "вул. Дерибасівська, 5",
			City:        "Одеса",
			Rating:      "4.7",
			Image:       "https://images.unsplash.com/photo-1580821716522-81fa132dc946?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=80",
			Description: "Студія креативного тату мистецтва. Спеціалізуємося на унікальних акварельних тату.",
			Styles:      []string{"Акварель", "Графіка", "Абстракція"},
		},
	}
	salonIDs := make([]int, 0, len(salons))
	for _, in := range salons {
		salon, err := s.CreateSalon(ctx, in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		salonIDs = append(salonIDs, salon.ID)
	}

	day := 24 * time.Hour
	conversations := []seedConversation{
		{
			salonIdx:    0,
			lastAgo:     0,
			unreadCount: 2,
			messages: []seedMessage{
				{2 * time.Hour, "Вітаємо! Чим можемо допомогти?", false},
				{114 * time.Minute, "Привіт! Я хотів би дізнатися про можливість створення тату в японському стилі", true},
				{108 * time.Minute, "Звичайно! У нас є кілька майстрів, які спеціалізуються на японському стилі. Чи є у вас конкретні ідеї або референси?", false},
				{102 * time.Minute, "Так, я думав про щось з драконом або карпом кої на передпліччі", true},
				{5 * time.Minute, "Чудовий вибір! Ми можемо запропонувати кілька варіантів дизайну. Також можемо використати AI-генерацію з вашого додатку як основу. Коли вам було б зручно прийти на консультацію?", false},
			},
		},
		{
			salonIdx: 1,
			lastAgo:  day,
			messages: []seedMessage{
				{28 * time.Hour, "Доброго дня! Цікавлять тату в японському стилі.", true},
				{day, "Дякуємо за звернення! Наш майстер може проконсультувати вас", false},
			},
		},
		{
			salonIdx: 2,
			lastAgo:  3 * day,
			messages: []seedMessage{
				{4 * day, "Привіт! У вас роблять акварельні тату?", true},
				{3 * day, "Акварельні тату - це наша спеціалізація", false},
			},
		},
	}
	for _, c := range conversations {
		salonID := salonIDs[c.salonIdx]
		for _, m := range c.messages {
			_, err := s.CreateMessage(ctx, models.Message{
				UserID:     user.ID,
				SalonID:    salonID,
				Content:    m.content,
				Timestamp:  now.Add(-m.ago),
				IsFromUser: m.isFromUser,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		conv, err := s.GetConversation(ctx, user.ID, salonID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := s.SetConversationCounters(ctx, conv.ID, now.Add(-c.lastAgo), c.unreadCount); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.seedGallery(ctx, user.ID)
}

func (s *Storage) seedGallery(ctx context.Context, userID int) error {
	const op = "storage.memory.seedGallery"

	images := []struct {
		prompt    string
		style     string
		createdAt time.Time
	}{
		{"Японський дракон з елементами сакури", "Японський", time.Date(2023, 10, 28, 16, 45, 0, 0, time.UTC)},
		{"Акварельна рибка у пастельно-бірюзових кольорах", "Акварель", time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)},
		{"Дівчина в нео-традиційному стилі з елементами готики", "Неотрадиційний", time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)},
		{"Ангел з елементами геометричних фігур", "Геометричний", time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
	}
	for _, img := range images {
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("seed:"+img.prompt))
		err := s.SaveGalleryImage(ctx, models.GalleryImage{
			ID:        id.String(),
			UserID:    userID,
			Prompt:    img.prompt,
			Style:     img.style,
			URL:       "https://placehold.co/256x256/png?text=" + id.String()[:8],
			CreatedAt: img.createdAt,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
