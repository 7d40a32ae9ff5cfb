package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thToolboxTheme(),
		thLightTheme(),
		thDarkTheme(),
		thSapphireTheme(),
	} {
		thRegister(t)
	}
}

// thToolboxTheme is the purple plate used by the Toolbox plugin panels.
func thToolboxTheme() Theme {
	return Theme{
		Name:   "toolbox",
		Panel:  "#a06de4",
		Border: "#5021d4",
		Label:  "#000000",
	}
}

// thLightTheme is a brushed-aluminium style plate with dark print.
func thLightTheme() Theme {
	return Theme{
		Name:   "light",
		Panel:  "#e6e6e6",
		Border: "#9a9a9a",
		Label:  "#1e1e1e",
	}
}

// thDarkTheme is a black anodised plate with white print.
func thDarkTheme() Theme {
	return Theme{
		Name:   "dark",
		Panel:  "#1e1e1e",
		Border: "#3e3e3e",
		Label:  "#d4d4d4",
	}
}

func thSapphireTheme() Theme {
	return Theme{
		Name:   "sapphire",
		Panel:  "#2f5d9e",
		Border: "#1b3a66",
		Label:  "#f0f0f0",
	}
}
