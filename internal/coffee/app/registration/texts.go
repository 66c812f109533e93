package registration

import "github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"

const (
	welcomePhotoURL = "https://i.ibb.co/rfMcqY5/img.png"

	textWelcome = "Привет! Я чат бот random-coffee, созданный для лучшего знакомства среди друзей компании! Давай начнем?"

	textAskEmail          = "Отлично! Для начала давай узнаем твою почту? Напиши её ниже 😉"
	textInvalidEmail      = "Неверный формат электронной почты. Пожалуйста, введите почту в формате email@domen.domen"
	textAskName           = "Записал! Теперь введи своё имя и фамилию 😉"
	textAskPosition       = "Записал! Теперь введи свою должность 🧑‍🏭"
	textAskEmailAfterName = "Записал! Теперь введи свою почту 📫"

	textConfirmName     = "Отлично! В прошлой сессии твоё имя было - %s. Изменилось ли твоё имя?"
	textAskNewName      = "Пожалуйста, введите новое имя и фамилию 😉"
	textConfirmPosition = "Отлично! В прошлой сессии твоя должность была - %s. Изменилась ли твоя должность?"
	textAskNewPosition  = "Пожалуйста, введите новую должность 🧑‍🏭"

	textMissingNameOrEmail = "Кажется, я еще не знаю твое имя или почту. Пожалуйста, введи ваше имя, фамилию и почту."

	textCardReady = "Супер! Твоя карточка готова, давай посмотрим, как она выглядит :)\n\n" +
		"Имя: %s 🌸\n" +
		"Почта: %s 📫\n" +
		"Должность: %s 👀"

	textCurrentData = "Ваши текущие данные:\nИмя: %s\nПочта: %s\nДолжность: %s\n\n" +
		"Хотите изменить что-нибудь или начать новый цикл?"

	textJoinedCycle = "Отлично! На данный момент в текущем цикле участвует %s. " +
		"Ожидайте, пока наберется достаточное количество людей для выбора пары :) " +
		"Сообщение о результате придет в этот чат."
	textDeclinedCycle = "Ничего страшного, если передумаешь - нажми кнопку ниже и я добавлю тебя в текущий цикл :)"

	buttonLabelLetsGo          = "Поехали 🚀"
	buttonLabelYes             = "Да"
	buttonLabelNo              = "Нет"
	buttonLabelChangeData      = "Изменить данные"
	buttonLabelStartNewCycle   = "Начать новый цикл"
	buttonLabelJoinCycle       = "Я участвую в текущем цикле 👍"
	buttonLabelNotJoinCycle    = "Пока не хочу участвовать 👎"
	buttonLabelChangedMindJoin = "Ну ладно, я передумал - участвую!"
)

var (
	userCommands = []transport.Command{
		{Name: "start", Description: "Начать регистрацию"},
		{Name: "leave_feedback", Description: "Оставить отзыв о встрече"},
	}

	adminCommands = []transport.Command{
		{Name: "start", Description: "Начать регистрацию"},
		{Name: "leave_feedback", Description: "Оставить отзыв о встрече"},
		{Name: "show_all_users", Description: "Показать карточки пользователей"},
		{Name: "check_cycle_users", Description: "Отправить отчет об участниках цикла"},
		{Name: "match", Description: "Запустить подбор пар"},
		{Name: "clear_database", Description: "Очистить базу данных пользователей"},
	}
)
