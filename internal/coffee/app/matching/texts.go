package matching

const (
	textNotEnoughUsers       = "OOPS! Недостаточно пользователей для создания пары."
	textNotEnoughProfileData = "OOPS! Недостаточно данных для пользователей, чтобы создать пару."

	textPairCreated = "ВЖУХХ! И я создал пару! Это %s и %s 😊!\n\n" +
		"Напишите друг другу, и договоритесь о времени встречи или видеозвонка. " +
		"Вы можете устроить онлайн-коворкинг 💻 или запланировать совместный кофе-брейк ☕️\n\n" +
		"А можем вообще прямо сейчас сделать встречу в Google Meet, что скажешь? 🧐"

	textNoPairThisTime = "К сожалению, на этот раз не удалось найти пару для встречи. " +
		"Но не волнуйтесь, вы автоматически будете включены в следующий цикл."

	textMeetingLink = "А вот и твоя ссылка - 🔗 %s\n\n" +
		"Надеюсь, что все пройдет хорошо!\n\n" +
		"Не забудь потом оставить отзыв :)"

	textMeetingDeclined = "Хорошо, если вдруг передумаете - нажмите на кнопку ниже и я сделаю встречу :)"

	buttonLabelYesMeet         = "Да, давай :)"
	buttonLabelNoMeet          = "Нет, пока не нужно!"
	buttonLabelChangedMindMeet = "Я передумал, давай сделаем встречу!"
)
